package demo

import (
	"fmt"
	"io"

	ownerrors "github.com/ownref/ownref/errors"
	"github.com/ownref/ownref/handle"
	"github.com/ownref/ownref/ledger"
	"github.com/ownref/ownref/scoped"
)

// ScopedFileName is the file the fixed demonstration sequence writes.
const ScopedFileName = "example.txt"

// RunAll executes the fixed demonstration sequence, writing report
// lines to w. The first failure stops the sequence.
func RunAll(w io.Writer) error {
	ExclusiveScenario(w)
	SharedScenario(w)
	ObserverScenario(w)
	ContainerScenario(w)
	PublicationScenario(w)
	if err := ScopedFileScenario(w, ScopedFileName); err != nil {
		return ownerrors.Wrap(ownerrors.PhaseRuntime, ownerrors.KindIOFailure, err, "scoped file scenario")
	}
	return nil
}

// ExclusiveScenario demonstrates single ownership: acquire, transfer,
// release, with destruction observed through a ledger.
func ExclusiveScenario(w io.Writer) {
	led := ledger.New()
	defer led.Close()

	entry, retire := led.Track("int", "exclusively owned value")
	h := handle.Acquire(5, handle.WithFinalizer(retire))
	fmt.Fprintf(w, "exclusive: acquired value=%d identity=%s\n", *h.Value(), entry.ID)

	moved := handle.Transfer(h)
	fmt.Fprintf(w, "exclusive: source empty after transfer: %v\n", h.Empty())
	fmt.Fprintf(w, "exclusive: moved value=%d\n", *moved.Value())

	moved.Release()
	fmt.Fprintf(w, "exclusive: live=%d destroyed=%d\n", led.Live(), led.Destroyed())
}

// SharedScenario demonstrates reference-counted ownership: duplicates
// raise the count, releases lower it, and the value is destroyed with
// the last owner.
func SharedScenario(w io.Writer) {
	led := ledger.New()
	defer led.Close()

	entry, retire := led.Track("int", "shared value")
	h := handle.Share(5, handle.WithFinalizer(retire))
	fmt.Fprintf(w, "shared: acquired value=%d identity=%s count=%d\n", *h.Value(), entry.ID, h.Count())

	dup := h.Duplicate()
	fmt.Fprintf(w, "shared: after duplicate count=%d\n", h.Count())

	dup.Release()
	fmt.Fprintf(w, "shared: after duplicate release count=%d value=%d\n", h.Count(), *h.Value())

	h.Release()
	fmt.Fprintf(w, "shared: live=%d destroyed=%d\n", led.Live(), led.Destroyed())
}

// ObserverScenario demonstrates a non-owning reference: resolution
// succeeds while an owner remains and fails closed after the last
// release.
func ObserverScenario(w io.Writer) {
	h := handle.Share(5)
	obs := h.Observe()
	fmt.Fprintf(w, "observer: count unchanged by observe: %d\n", h.Count())

	if locked, ok := obs.Resolve(); ok {
		fmt.Fprintf(w, "observer: resolved value=%d count=%d\n", *locked.Value(), locked.Count())
		locked.Release()
	}

	h.Release()
	if _, ok := obs.Resolve(); !ok {
		fmt.Fprintln(w, "observer: value no longer exists")
	}
}

// ContainerScenario demonstrates transfer-into-collection semantics:
// three items move into a container and are iterated by reference in
// insertion order.
func ContainerScenario(w io.Writer) {
	c := NewContainer()
	defer c.Release()

	for i := 1; i <= 3; i++ {
		h := handle.Acquire(Item{
			Name: fmt.Sprintf("Person %d", i),
			Age:  30 + i,
		})
		c.Add(h)
		fmt.Fprintf(w, "container: transferred item, source empty: %v\n", h.Empty())
	}

	c.Each(func(item *Item) bool {
		fmt.Fprintf(w, "container: item name=%q age=%d\n", item.Name, item.Age)
		return true
	})
}

// PublicationScenario demonstrates cycle avoidance: the publication
// owns its annotations while each annotation resolves its observer
// reference to report the publication's content.
func PublicationScenario(w io.Writer) {
	pub := NewPublication("Check out this amazing photo!")
	for _, text := range []string{
		"Beautiful shot!",
		"I wish I could take pictures like this.",
		"I like it.",
	} {
		Annotate(pub, text)
	}

	pub.Value().Annotations(func(ann *Annotation) bool {
		locked, ok := ann.Publication()
		if !ok {
			fmt.Fprintf(w, "publication: annotation %q lost its publication\n", ann.Text)
			return true
		}
		fmt.Fprintf(w, "publication: %q on %q\n", ann.Text, locked.Value().Content)
		locked.Release()
		return true
	})

	pub.Release()
	fmt.Fprintln(w, "publication: released, annotations destroyed with it")
}

// ScopedFileScenario demonstrates scope-bound resource release: the
// file is acquired, written, read back, and closed on every exit path.
func ScopedFileScenario(w io.Writer, name string) error {
	f, err := scoped.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write("Hello, RAII!\n"); err != nil {
		return err
	}
	if err := f.Write("Hello, Friend\n"); err != nil {
		return err
	}

	content, err := f.ReadAll()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "scoped: %s content:\n%s", f.Name(), content)
	return nil
}
