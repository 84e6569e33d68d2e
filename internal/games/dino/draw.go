package dino

// Game over panel dimensions on the sprite sheet.
const (
	gameOverTextWidth     = 191
	gameOverTextHeight    = 11
	gameOverRestartWidth  = 36
	gameOverRestartHeight = 32

	scoreY = 5

	// Sheet indices of the "H" and "I" glyphs that follow the ten digits.
	digitH = 10
	digitI = 11
)

// Draw emits one Render call per visible entity, back to front.
func (r *Runner) Draw(out Renderer) {
	cfg := r.cfg

	for _, c := range r.horizon.Clouds() {
		out.Render(Frame{Sprite: SpriteCloud, Width: cfg.Cloud.Width, Height: cfg.Cloud.Height, Scale: 1}, c.X, c.Y)
	}

	xPos, sourceX := r.horizon.Line().Segments()
	for i := range xPos {
		out.Render(Frame{
			Sprite:  SpriteHorizon,
			SourceX: sourceX[i],
			Width:   cfg.Horizon.LineWidth,
			Height:  cfg.Horizon.LineHeight,
			Scale:   1,
		}, xPos[i], cfg.Horizon.LineY)
	}

	for _, o := range r.horizon.Obstacles() {
		width := o.Width()
		out.Render(Frame{
			Sprite:  SpriteObstacle,
			Variant: o.Type.Name,
			SourceX: width * (o.Size - 1) / 2,
			Width:   width,
			Height:  o.Type.Height,
			Scale:   o.Size,
		}, o.X, o.Y())
	}

	r.drawScore(out)

	a := r.actor
	out.Render(Frame{
		Sprite:  SpriteActor,
		SourceX: a.DrawFrame(),
		Width:   cfg.Actor.Width,
		Height:  cfg.Actor.Height,
		Scale:   1,
	}, a.X, a.Y)

	if r.state.Crashed {
		r.drawGameOver(out)
	}
}

func (r *Runner) drawScore(out Renderer) {
	sc := r.cfg.Score
	x := r.cfg.Runner.Width - sc.DigitDestWidth*(sc.MaxDistanceUnits+1)

	digit := func(value, pos, originX int) {
		out.Render(Frame{
			Sprite:  SpriteDigit,
			SourceX: value * sc.DigitWidth,
			Width:   sc.DigitWidth,
			Height:  sc.DigitHeight,
			Scale:   1,
		}, originX+pos*sc.DigitDestWidth, scoreY)
	}

	if r.score.Visible() {
		for i, d := range r.score.Digits() {
			digit(d, i, x)
		}
	}

	high := r.score.HighScoreDigits()
	if high == nil {
		return
	}
	// "HI", a blank, then the digits, to the left of the score.
	hx := x - sc.MaxDistanceUnits*2*sc.DigitWidth
	digit(digitH, 0, hx)
	digit(digitI, 1, hx)
	for i, d := range high {
		digit(d, i+3, hx)
	}
}

func (r *Runner) drawGameOver(out Renderer) {
	w, h := r.cfg.Runner.Width, r.cfg.Runner.Height
	centerX := w / 2

	out.Render(Frame{
		Sprite:  SpriteGameOver,
		Variant: "text",
		Width:   gameOverTextWidth,
		Height:  gameOverTextHeight,
		Scale:   1,
	}, centerX-gameOverTextWidth/2, (h-25)/3)

	out.Render(Frame{
		Sprite:  SpriteGameOver,
		Variant: "restart",
		Width:   gameOverRestartWidth,
		Height:  gameOverRestartHeight,
		Scale:   1,
	}, centerX-gameOverRestartWidth/2, h/2)
}
