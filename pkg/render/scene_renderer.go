package render

import (
	"image/color"

	"go-sonar/internal/app"
	"go-sonar/internal/component"
	"go-sonar/internal/config"
	"go-sonar/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type SceneRenderer struct {
	width, height int
	colors        *SceneColors
	fillImg       *ebiten.Image
	beamVs        []ebiten.Vertex
	beamIs        []uint16
	seabedImage   *ebiten.Image // Предрендеренный рельеф дна
}

func NewSceneRenderer(width, height int, colors *SceneColors) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &SceneRenderer{
		width:       width,
		height:      height,
		colors:      colors,
		fillImg:     fillImg,
		beamVs:      make([]ebiten.Vertex, 0, 8),
		beamIs:      make([]uint16, 0, 8),
		seabedImage: ebiten.NewImage(width, height),
	}
}

// RenderSeabedImage рисует профиль дна один раз; рельеф не меняется за сессию.
func (r *SceneRenderer) RenderSeabedImage(seabed []int) {
	r.seabedImage.Clear()
	for x := 0; x+1 < len(seabed); x++ {
		vector.StrokeLine(r.seabedImage,
			float32(x), float32(seabed[x]), float32(x+1), float32(seabed[x+1]),
			r.colors.StrokeWidth, r.colors.SeabedColor, true)
	}
}

// Draw renders one frame: seabed, mines, danger zones, the live beam with its
// echoes, fading flashes and finally the platform.
func (r *SceneRenderer) Draw(screen *ebiten.Image, s *app.Session) {
	screen.Fill(r.colors.BackgroundColor)
	screen.DrawImage(r.seabedImage, nil)

	for _, m := range s.Scene.Mines() {
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), config.MineRadius, r.colors.MineColor, true)
	}
	for _, z := range s.Memory.All() {
		vector.StrokeCircle(screen, float32(z.X), float32(z.Y), config.DangerZoneRadius, 1, r.colors.DangerColor, true)
	}

	if s.Sonar.IsActive() {
		ox, oy, radius := s.Sonar.OriginAndRadius()
		r.drawBeam(screen, ox, oy, radius, s.Sonar.HalfAngle())
		for _, d := range s.Sonar.PulseEchoes() {
			c := r.detectionColor(d.Kind)
			vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), config.DetectionRadius, c, true)
			vector.StrokeLine(screen, float32(ox), float32(oy), float32(d.X), float32(d.Y), 1,
				WithAlpha(c, r.colors.EchoLineAlpha), true)
		}
	}

	for _, f := range s.ECS.EchoFlashes {
		c := Fade(r.detectionColor(f.Kind), f.Alpha())
		vector.StrokeCircle(screen, float32(f.X), float32(f.Y), config.DetectionRadius+2, 1, c, true)
	}

	r.drawPlatform(screen, s)
}

func (r *SceneRenderer) detectionColor(kind component.DetectionKind) color.RGBA {
	if kind == component.KindMine {
		return r.colors.DangerColor
	}
	return r.colors.SeabedColor
}

func (r *SceneRenderer) drawBeam(screen *ebiten.Image, ox, oy, radius, half float64) {
	ux, uy, lx, ly := utils.BeamEdges(ox, oy, radius, half)

	path := vector.Path{}
	path.MoveTo(float32(ox), float32(oy))
	path.LineTo(float32(ux), float32(uy))
	path.LineTo(float32(lx), float32(ly))
	path.Close()

	c := WithAlpha(r.colors.BeamColor, r.colors.BeamColor.A)
	r.beamVs, r.beamIs = path.AppendVerticesAndIndicesForFilling(r.beamVs[:0], r.beamIs[:0])
	for i := range r.beamVs {
		r.beamVs[i].SrcX = 0.5
		r.beamVs[i].SrcY = 0.5
		r.beamVs[i].ColorR = float32(c.R) / 255
		r.beamVs[i].ColorG = float32(c.G) / 255
		r.beamVs[i].ColorB = float32(c.B) / 255
		r.beamVs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(r.beamVs, r.beamIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *SceneRenderer) drawPlatform(screen *ebiten.Image, s *app.Session) {
	x, y := s.Platform.Position()
	w, h := s.Platform.Size()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), r.colors.PlatformColor, false)
	// корпус гидролокатора на носу
	vector.DrawFilledRect(screen,
		float32(x+w-config.HousingSize), float32(y-config.HousingSize),
		config.HousingSize, config.HousingSize, r.colors.HousingColor, false)
}
