package collapse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-collapsible/pkg/collapse"
)

func TestController_StartsExpanded(t *testing.T) {
	ctrl := collapse.New("root")
	if !ctrl.Expanded() {
		t.Fatalf("expected new controller to be expanded")
	}
	if ctrl.ID() != "root" {
		t.Fatalf("unexpected id %q", ctrl.ID())
	}
}

func TestController_Toggle(t *testing.T) {
	ctrl := collapse.New("root")
	ctrl.Sync(false, 0)

	if applied := ctrl.Toggle(false); !applied {
		t.Fatalf("expected toggle to apply")
	}
	if ctrl.Expanded() {
		t.Fatalf("expected collapsed after toggle(false)")
	}
	ctrl.Toggle(true)
	if !ctrl.Expanded() {
		t.Fatalf("expected expanded after toggle(true)")
	}
}

func TestController_ForceExpandIgnoresToggle(t *testing.T) {
	ctrl := collapse.New("root")
	ctrl.Sync(true, 0)

	if applied := ctrl.Toggle(false); applied {
		t.Fatalf("toggle must be ignored while forced open")
	}
	if !ctrl.Expanded() {
		t.Fatalf("forced panel must render expanded")
	}

	ctrl.Sync(false, 0)
	if !ctrl.Expanded() {
		t.Fatalf("ignored toggle must not leave hidden collapsed state behind")
	}
}

func TestController_ForceExpandOverridesPriorCollapse(t *testing.T) {
	ctrl := collapse.New("root")
	ctrl.Sync(false, 0)
	ctrl.Toggle(false)

	ctrl.Sync(true, 0)
	if !ctrl.Expanded() {
		t.Fatalf("errors appearing must force the panel open")
	}
	if !ctrl.Forced() {
		t.Fatalf("expected Forced() to report true")
	}

	ctrl.Sync(false, 0)
	if ctrl.Expanded() {
		t.Fatalf("user collapse should resurface once errors clear")
	}
}

func TestController_TokenChangeReExpands(t *testing.T) {
	var tokens collapse.TokenSource
	ctrl := collapse.New("root")
	ctrl.Sync(false, tokens.Current())
	ctrl.Toggle(false)

	ctrl.Sync(false, tokens.Current())
	if ctrl.Expanded() {
		t.Fatalf("unchanged token must not re-expand")
	}

	ctrl.Sync(false, tokens.Next())
	if !ctrl.Expanded() {
		t.Fatalf("changed token must re-expand")
	}
}

func TestController_CoordinatorSeedsAndReceivesChanges(t *testing.T) {
	var events []string
	list := collapse.NewCollapsedList([]string{"root_tags"}, func(id string, collapsed bool) {
		state := "expanded"
		if collapsed {
			state = "collapsed"
		}
		events = append(events, id+":"+state)
	})

	tags := collapse.New("root_tags", collapse.WithCoordinator(list))
	owner := collapse.New("root_owner", collapse.WithCoordinator(list))
	if tags.Expanded() {
		t.Fatalf("expected listed panel to mount collapsed")
	}
	if !owner.Expanded() {
		t.Fatalf("expected unlisted panel to mount expanded")
	}

	owner.Toggle(false)
	tags.Sync(false, 1)

	want := []string{"root_owner:collapsed", "root_tags:expanded"}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"root_owner"}, list.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifier(t *testing.T) {
	var got []bool
	notifier := collapse.Notifier(func(_ string, collapsed bool) {
		got = append(got, collapsed)
	})
	ctrl := collapse.New("root", collapse.WithCoordinator(notifier))
	if !ctrl.Expanded() {
		t.Fatalf("notifier must not collapse panels on mount")
	}
	ctrl.Toggle(false)
	ctrl.Toggle(true)
	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}
