package display

import "image"

type request struct {
	title string
	img   image.Image
	done  chan struct{}
}

// session passes images from the goroutine running fn to the goroutine that
// owns the window. Only one image is current at a time and Show blocks until
// it is dismissed.
type session struct {
	fn func(Viewer) error

	started bool
	reqs    chan *request
	errc    chan error
	current *request
}

func newSession(fn func(Viewer) error) *session {
	return &session{
		fn:   fn,
		reqs: make(chan *request),
		errc: make(chan error, 1),
	}
}

// Show implements the Viewer interface
func (s *session) Show(title string, img image.Image) error {
	r := &request{
		title: title,
		img:   img,
		done:  make(chan struct{}),
	}
	s.reqs <- r
	<-r.done
	return nil
}

// poll starts fn on the first call and never blocks. It returns the next
// request once the current one has been dismissed, or finished and the
// result of fn once fn has returned.
func (s *session) poll() (r *request, finished bool, err error) {
	if !s.started {
		s.started = true
		go func() {
			defer close(s.errc)
			s.errc <- s.fn(s)
		}()
	}

	if s.current != nil {
		return nil, false, nil
	}

	select {
	case r = <-s.reqs:
		s.current = r
		return r, false, nil
	case err = <-s.errc:
		return nil, true, err
	default:
	}

	return nil, false, nil
}

func (s *session) showing() bool {
	return s.current != nil
}

// dismiss releases the Show call waiting on the current request
func (s *session) dismiss() {
	close(s.current.done)
	s.current = nil
}
