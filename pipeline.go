package fixpoly

// Pipeline ties the per-frame stages together: transform the model for
// an observer, order the faces back to front, dispatch them to a
// rasterizer. It picks the ordering strategy from the model at
// creation time (BSP traversal when the model carries a tree, depth
// sort otherwise) unless WithOrderer overrides the choice.
//
// A Pipeline owns its model's frame buffers and is not safe for
// concurrent use.
type Pipeline struct {
	model       *Model
	transformer *Transformer
	orderer     Orderer
	renderer    *Renderer
}

// NewPipeline creates a pipeline around a loaded model.
func NewPipeline(m *Model, opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ord := o.orderer
	if ord == nil {
		if m.Tree() != nil {
			ord = NewBSPOrderer()
		} else {
			ord = NewDepthSorter()
		}
	}

	return &Pipeline{
		model:       m,
		transformer: NewTransformer(opts...),
		orderer:     ord,
		renderer:    NewRenderer(),
	}
}

// Model returns the pipeline's model.
func (p *Pipeline) Model() *Model { return p.model }

// Renderer returns the dispatch stage for color configuration.
func (p *Pipeline) Renderer() *Renderer { return p.renderer }

// Stats returns the dispatch counts of the last Frame call.
func (p *Pipeline) Stats() RenderStats { return p.renderer.Stats() }

// Frame runs one complete frame: transform, order, draw.
func (p *Pipeline) Frame(obs Observer, dst Rasterizer) error {
	p.transformer.Transform(p.model, obs)
	order, err := p.orderer.Order(p.model, obs)
	if err != nil {
		return err
	}
	p.renderer.Draw(p.model, order, dst)
	return nil
}
