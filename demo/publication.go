package demo

import (
	"github.com/ownref/ownref/handle"
)

// Publication owns a sequence of Annotations through shared handles.
// Shared rather than exclusive, because an annotation might be
// referenced elsewhere while the publication still owns it.
type Publication struct {
	Content     string
	annotations []*handle.Shared[Annotation]
}

// Annotation holds a non-owning observer reference back to its
// Publication. An owning back-reference would keep both counts
// positive forever and neither side could ever be destroyed.
type Annotation struct {
	Text        string
	publication *handle.Observer[Publication]
}

// NewPublication shares a publication and returns its owning handle.
func NewPublication(content string) *handle.Shared[Publication] {
	return handle.Share(Publication{Content: content})
}

// Annotate attaches a new annotation to the publication behind pub.
// The publication becomes the annotation's owner; the annotation only
// observes the publication.
func Annotate(pub *handle.Shared[Publication], text string) {
	ann := handle.Share(Annotation{
		Text:        text,
		publication: pub.Observe(),
	})
	pub.Value().annotations = append(pub.Value().annotations, ann)
}

// Destroy releases the publication's annotation handles. Runs once,
// when the publication's last owner releases it.
func (p *Publication) Destroy() {
	for _, ann := range p.annotations {
		ann.Release()
	}
	p.annotations = nil
}

// Annotations yields the owned annotations by reference, in
// attachment order.
func (p *Publication) Annotations(fn func(*Annotation) bool) {
	for _, h := range p.annotations {
		if !fn(h.Value()) {
			return
		}
	}
}

// Publication resolves the annotation's observer reference. While the
// publication is live it returns an owning handle the caller must
// release; after destruction it reports absence.
func (a *Annotation) Publication() (*handle.Shared[Publication], bool) {
	return a.publication.Resolve()
}
