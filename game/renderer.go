package game

// Renderer draws frames. Renderers never change game state.
type Renderer interface {
	Render(Frame) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Frame) error

// Render calls f.
func (f RendererFunc) Render(frame Frame) error { return f(frame) }

// MultiRenderer renders each frame to all of its renderers in order, stopping
// at the first error.
type MultiRenderer []Renderer

// Render implements Renderer.
func (m MultiRenderer) Render(frame Frame) error {
	for _, r := range m {
		if err := r.Render(frame); err != nil {
			return err
		}
	}
	return nil
}
