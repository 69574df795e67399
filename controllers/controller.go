package controllers

import (
	"context"
	"errors"

	"hostel/navigation"
	"hostel/transport"

	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notify surfaces a short-lived message to the user. It never affects control
// flow; controllers call it and move on.
type Notify func(message string, level Level)

// Confirm gates destructive operations behind an interactive yes/no prompt.
type Confirm func(prompt string) bool

// Resource is the uniform backend shape every list page mutates against.
type Resource[E, D any] interface {
	List(ctx context.Context) ([]E, error)
	Create(ctx context.Context, draft D) (E, error)
	Update(ctx context.Context, id int, draft D) (E, error)
	Delete(ctx context.Context, id int) error
}

// Messages holds the per-resource notification texts.
type Messages struct {
	LoadFailed    string
	Created       string
	Updated       string
	SaveFailed    string
	Deleted       string
	DeleteFailed  string
	ConfirmDelete string
}

// ListController owns one page's state and the fetch → mutate → refetch cycle,
// parametrized by entity type E and form draft type D. It is not safe for
// concurrent use; the page loop is single-threaded.
type ListController[E, D any] struct {
	res      Resource[E, D]
	nav      navigation.Navigator
	log      *zap.Logger
	msgs     Messages
	defaults func() D
	idOf     func(E) int
	draftOf  func(E) D

	items    []E
	loading  bool
	showForm bool
	editing  *E
	form     D
	busy     bool
}

func NewListController[E, D any](
	res Resource[E, D],
	nav navigation.Navigator,
	log *zap.Logger,
	msgs Messages,
	defaults func() D,
	idOf func(E) int,
	draftOf func(E) D,
) *ListController[E, D] {
	return &ListController[E, D]{
		res:      res,
		nav:      nav,
		log:      log,
		msgs:     msgs,
		defaults: defaults,
		idOf:     idOf,
		draftOf:  draftOf,
		loading:  true,
		form:     defaults(),
	}
}

// FetchList replaces items with the latest list. A 401/403 redirects to
// sign-in; any other failure clears the list and notifies once. The loading
// flag is cleared on every path.
func (c *ListController[E, D]) FetchList(ctx context.Context, notify Notify) {
	defer func() { c.loading = false }()

	items, err := c.res.List(ctx)
	if err != nil {
		c.items = []E{}
		if errors.Is(err, transport.ErrUnauthenticated) {
			c.log.Info("list fetch unauthenticated, redirecting to sign-in")
			c.nav.Navigate(navigation.RouteSignIn)
			return
		}
		c.log.Warn("list fetch failed", zap.Error(err))
		if notify != nil {
			notify(c.msgs.LoadFailed, LevelError)
		}
		return
	}
	if items == nil {
		items = []E{}
	}
	c.items = items
}

// Submit creates or updates depending on whether an entity is being edited.
// On success the form closes and resets and the list is refetched; on failure
// the form stays open with its draft intact. A submit already in flight is
// dropped.
func (c *ListController[E, D]) Submit(ctx context.Context, notify Notify) {
	if c.busy {
		return
	}
	c.busy = true
	defer func() { c.busy = false }()

	var err error
	success := c.msgs.Created
	if c.editing != nil {
		_, err = c.res.Update(ctx, c.idOf(*c.editing), c.form)
		success = c.msgs.Updated
	} else {
		_, err = c.res.Create(ctx, c.form)
	}
	if err != nil {
		c.log.Warn("submit failed", zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, c.msgs.SaveFailed), LevelError)
		}
		return
	}

	if notify != nil {
		notify(success, LevelSuccess)
	}
	c.showForm = false
	c.editing = nil
	c.form = c.defaults()
	c.FetchList(ctx, notify)
}

// Edit copies the entity's fields into the form and opens it.
func (c *ListController[E, D]) Edit(entity E) {
	copied := entity
	c.editing = &copied
	c.form = c.draftOf(entity)
	c.showForm = true
}

// Delete asks for confirmation first; a declined prompt issues no call at all.
func (c *ListController[E, D]) Delete(ctx context.Context, id int, confirm Confirm, notify Notify) {
	if confirm == nil || !confirm(c.msgs.ConfirmDelete) {
		return
	}
	if err := c.res.Delete(ctx, id); err != nil {
		c.log.Warn("delete failed", zap.Int("id", id), zap.Error(err))
		if notify != nil {
			notify(c.msgs.DeleteFailed, LevelError)
		}
		return
	}
	if notify != nil {
		notify(c.msgs.Deleted, LevelSuccess)
	}
	c.FetchList(ctx, notify)
}

// Cancel closes the form and resets the draft to its defaults.
func (c *ListController[E, D]) Cancel() {
	c.showForm = false
	c.editing = nil
	c.form = c.defaults()
}

// UpdateForm merges field changes into the draft. No validation happens here.
func (c *ListController[E, D]) UpdateForm(mutate func(draft *D)) {
	mutate(&c.form)
}

func (c *ListController[E, D]) OpenForm() { c.showForm = true }

func (c *ListController[E, D]) Items() []E { return c.items }

func (c *ListController[E, D]) Loading() bool { return c.loading }

func (c *ListController[E, D]) ShowForm() bool { return c.showForm }

// Editing returns a copy of the entity being edited, or false when the form
// is a create form.
func (c *ListController[E, D]) Editing() (E, bool) {
	if c.editing == nil {
		var zero E
		return zero, false
	}
	return *c.editing, true
}

func (c *ListController[E, D]) Form() D { return c.form }
