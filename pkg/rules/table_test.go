package rules_test

import (
	"testing"

	"github.com/aretw0/pivot"
	"github.com/aretw0/pivot/pkg/rules"
)

type phase int

const (
	drafted phase = iota
	review
	published
	archived
)

type action int

const (
	submit action = iota
	approve
	reject
	retire
)

type docCtx struct {
	revisions int
	published bool
}

func buildTable(t *testing.T) *rules.Table[phase, action, docCtx] {
	t.Helper()

	b := rules.New[phase, action, docCtx]()
	b.When(drafted).On(submit).To(review)
	b.When(review).On(reject).To(drafted).Do(func(c *docCtx) { c.revisions++ })
	b.When(review).On(approve).To(published).Do(func(c *docCtx) { c.published = true })
	b.When(published).On(retire).To(archived)

	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return table
}

func TestTable_Next(t *testing.T) {
	table := buildTable(t)
	var ctx docCtx

	next, ok := table.Next(drafted, submit, &ctx)
	if !ok || next != review {
		t.Fatalf("expected (review, true), got (%v, %v)", next, ok)
	}

	next, ok = table.Next(review, approve, &ctx)
	if !ok || next != published {
		t.Fatalf("expected (published, true), got (%v, %v)", next, ok)
	}
	if !ctx.published {
		t.Error("approve action should have marked the context published")
	}
}

func TestTable_MissReturnsStateUnchanged(t *testing.T) {
	table := buildTable(t)
	ctx := docCtx{revisions: 3}

	next, ok := table.Next(archived, submit, &ctx)
	if ok {
		t.Fatal("archived has no rows; expected a miss")
	}
	if next != archived {
		t.Errorf("a miss must return the input state, got %v", next)
	}
	if ctx.revisions != 3 {
		t.Error("a miss must not run actions")
	}
}

func TestTable_ActionsRunInDeclarationOrder(t *testing.T) {
	var order []string
	b := rules.New[phase, action, docCtx]()
	b.When(drafted).On(submit).To(review).
		Do(func(c *docCtx) { order = append(order, "first") }).
		Do(func(c *docCtx) { order = append(order, "second") })

	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	var ctx docCtx
	table.Next(drafted, submit, &ctx)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected action order: %v", order)
	}
}

func TestBuild_RejectsDuplicatePairs(t *testing.T) {
	b := rules.New[phase, action, docCtx]()
	b.When(drafted).On(submit).To(review)
	b.When(drafted).On(submit).To(archived)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected a duplicate-pair error")
	}
}

func TestBuild_RejectsIncompleteRules(t *testing.T) {
	t.Run("missing On", func(t *testing.T) {
		b := rules.New[phase, action, docCtx]()
		b.When(drafted).To(review)
		if _, err := b.Build(); err == nil {
			t.Fatal("expected an error for a rule without On")
		}
	})

	t.Run("missing To", func(t *testing.T) {
		b := rules.New[phase, action, docCtx]()
		b.When(drafted).On(submit)
		if _, err := b.Build(); err == nil {
			t.Fatal("expected an error for a rule without To")
		}
	})
}

// docPhase delegates its Handle to a table, showing the intended pairing
// with the core machine.
type docPhase struct {
	phase
}

var docTable *rules.Table[phase, action, docCtx]

func (s docPhase) Handle(ev action, ctx *docCtx) (docPhase, bool) {
	next, ok := docTable.Next(s.phase, ev, ctx)
	return docPhase{next}, ok
}

func TestTable_BacksAMachine(t *testing.T) {
	docTable = buildTable(t)

	m := pivot.NewDefault[docPhase, action, docCtx](docPhase{drafted})
	m.Handle(submit)
	m.Handle(approve)

	if got := m.Current(); got.phase != published {
		t.Fatalf("expected published, got %v", got.phase)
	}
	if !m.Context().published {
		t.Error("table action should have mutated the machine context")
	}
}
