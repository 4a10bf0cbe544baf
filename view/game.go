package view

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-lifeboard/model"
	"github.com/sheikhrachel/go-lifeboard/utils"
)

const (
	windowTitle = "Game of Life"

	panelMargin = 10
	lampY       = 50
	lampRadius  = 5
	statusY     = 90
	helpY       = 160
	helpText    = "S start  X pause\nC clear  N step\nR noise  U scatter\nP patterns"
)

var (
	backgroundColor = color.RGBA{225, 225, 225, 255}
	lineColor       = color.Black
	aliveColor      = color.Black
	pausedColor     = color.RGBA{225, 0, 0, 255}
	runningColor    = color.RGBA{0, 255, 0, 255}
	textColor       = color.Black
)

// keyCommands maps keyboard keys to session commands, checked in order
var keyCommands = []struct {
	key ebiten.Key
	cmd model.Command
}{
	{ebiten.KeyS, model.CommandStart},
	{ebiten.KeyX, model.CommandPause},
	{ebiten.KeyC, model.CommandClear},
	{ebiten.KeyN, model.CommandStep},
	{ebiten.KeyR, model.CommandRandomize},
	{ebiten.KeyP, model.CommandPatterns},
	{ebiten.KeyU, model.CommandScatter},
}

// Game drives a session from an ebiten window
type Game struct {
	session *model.Session
	layout  model.Layout
	width   int
	height  int
}

// NewGame wraps a session for display in a width x height window
func NewGame(session *model.Session, layout model.Layout, width, height int) *Game {
	return &Game{
		session: session,
		layout:  layout,
		width:   width,
		height:  height,
	}
}

// Update is called each tick by ebiten: input first, then one generation
func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.ClickAt(g.layout, x, y)
	}

	for _, kc := range keyCommands {
		if !inpututil.IsKeyJustPressed(kc.key) {
			continue
		}
		if err := g.session.Apply(kc.cmd); err != nil {
			return err
		}
	}

	g.session.Tick()
	return nil
}

// Draw is called each frame by ebiten
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	grid := g.session.Grid()
	grid.Cells(func(column, row int, alive bool) {
		if !alive {
			return
		}
		x, y, size := g.layout.CellRect(column, row)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), aliveColor, false)
	})
	g.drawGridLines(screen, grid)

	lamp := pausedColor
	if g.session.Running() {
		lamp = runningColor
	}
	panelX := g.width - utils.SidePanelWidth + panelMargin
	vector.DrawFilledCircle(screen, float32(panelX+lampRadius), lampY, lampRadius, lamp, true)

	status := fmt.Sprintf("Gen: %d\nLiving: %d\n%s",
		g.session.Generation(), grid.CountLivingCells(), g.session.Status())
	text.Draw(screen, status, basicfont.Face7x13, panelX, statusY, textColor)
	text.Draw(screen, helpText, basicfont.Face7x13, panelX, helpY, textColor)
}

func (g *Game) drawGridLines(screen *ebiten.Image, grid *model.Grid) {
	width, height := g.layout.Size(grid)
	ox, oy := float32(g.layout.OriginX), float32(g.layout.OriginY)

	for column := 0; column <= grid.Columns(); column++ {
		x, _, _ := g.layout.CellRect(column, 0)
		vector.StrokeLine(screen, float32(x), oy, float32(x), oy+float32(height), 1, lineColor, false)
	}
	for row := 0; row <= grid.Rows(); row++ {
		_, y, _ := g.layout.CellRect(0, row)
		vector.StrokeLine(screen, ox, float32(y), ox+float32(width), float32(y), 1, lineColor, false)
	}
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed
func Run(session *model.Session, config utils.Config) error {
	layout := model.Layout{CellSize: config.CellSize}
	game := NewGame(session, layout, config.WindowWidth, config.WindowHeight)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(config.TPS)

	log.Printf("Window %dx%d, board %dx%d, %d TPS",
		config.WindowWidth, config.WindowHeight, config.Columns, config.Rows, config.TPS)
	return ebiten.RunGame(game)
}
