// Package tour runs the language feature demonstrations.
//
// Every demo is independent: it builds its own values, prints to the writer it receives,
// and keeps nothing between runs.
package tour

import (
	"context"
	"io"
	"slices"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/mapkit"

	"go.llib.dev/langtour/internal/catalog"
	"go.llib.dev/langtour/internal/person"
)

const ErrUnknownDemo errorkit.Error = "ErrUnknownDemo"

type Tour struct {
	// Clock is used to derive birth years.
	// Defaults to person.SystemClock.
	Clock person.Clock
	// Catalog makes the containers of the hashmap and hashset demos.
	// Defaults to catalog.Memory.
	Catalog catalog.Backend
	Logger  *logging.Logger
}

type Demo struct {
	Name string
	Run  func(ctx context.Context, w io.Writer) error
}

// Demos lists the demonstrations in their presentation order.
func (t Tour) Demos() []Demo {
	return []Demo{
		{Name: "traits", Run: t.Traits},
		{Name: "enumerate", Run: t.Enumerate},
		{Name: "zip", Run: t.Zip},
		{Name: "tuple", Run: t.Tuple},
		{Name: "closures", Run: t.Closures},
		{Name: "ifelse", Run: t.IfElse},
		{Name: "filtermap", Run: t.FilterMap},
		{Name: "hashmap", Run: t.HashMap},
		{Name: "hashset", Run: t.HashSet},
	}
}

// Run executes the named demos, or every demo when no name is given.
// Demos always run in presentation order, regardless of the order of names.
func (t Tour) Run(ctx context.Context, w io.Writer, names ...string) error {
	demos, err := t.selectDemos(names)
	if err != nil {
		return err
	}
	ctx = logging.ContextWith(ctx, logging.Field("run_id", uuid.NewV4().String()))
	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.logger().Debug(ctx, "demo started", logging.Field("demo", d.Name))
		if err := d.Run(ctx, w); err != nil {
			t.logger().Error(ctx, "demo failed", logging.Field("demo", d.Name), logging.ErrField(err))
			return err
		}
		t.logger().Debug(ctx, "demo finished", logging.Field("demo", d.Name))
	}
	return nil
}

func (t Tour) selectDemos(names []string) ([]Demo, error) {
	all := t.Demos()
	if len(names) == 0 {
		return all, nil
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}
	var selected []Demo
	for _, d := range all {
		if _, ok := wanted[d.Name]; ok {
			selected = append(selected, d)
			delete(wanted, d.Name)
		}
	}
	if 0 < len(wanted) {
		return nil, ErrUnknownDemo.F("%q", mapkit.Keys(wanted, slices.Sort[[]string]))
	}
	return selected, nil
}

func (t Tour) clock() person.Clock {
	if t.Clock == nil {
		return person.SystemClock{}
	}
	return t.Clock
}

func (t Tour) catalog() catalog.Backend {
	if t.Catalog == nil {
		return catalog.Memory{}
	}
	return t.Catalog
}

var discard = &logging.Logger{Out: io.Discard}

func (t Tour) logger() *logging.Logger {
	if t.Logger == nil {
		return discard
	}
	return t.Logger
}
