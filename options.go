package fixpoly

// Screen defaults match the 320x200 reference display: projection is
// centred on (160, 100) with a perspective scale of 100.
const (
	DefaultCenterX = 160
	DefaultCenterY = 100
	DefaultScale   = 100
)

// Option configures a Transformer or Pipeline during creation.
//
// Example:
//
//	// Default 320x200 projection
//	pipe := fixpoly.NewPipeline(model)
//
//	// Centre the projection on a 640x400 screen
//	pipe := fixpoly.NewPipeline(model, fixpoly.WithScreenCenter(320, 200))
type Option func(*options)

type options struct {
	centerX, centerY int
	scale            int
	orderer          Orderer
}

func defaultOptions() options {
	return options{
		centerX: DefaultCenterX,
		centerY: DefaultCenterY,
		scale:   DefaultScale,
	}
}

// WithScreenCenter sets the screen-space centre of projection and of
// the final screen-plane rotation.
func WithScreenCenter(x, y int) Option {
	return func(o *options) {
		o.centerX = x
		o.centerY = y
	}
}

// WithPerspectiveScale sets the perspective scale factor applied
// during the divide by observer depth.
func WithPerspectiveScale(s int) Option {
	return func(o *options) { o.scale = s }
}

// WithOrderer overrides the visibility-ordering strategy a Pipeline
// would pick on its own (BSP traversal when the model has a tree,
// depth sort otherwise).
func WithOrderer(ord Orderer) Option {
	return func(o *options) { o.orderer = ord }
}
