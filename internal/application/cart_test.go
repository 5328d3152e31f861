package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"storefront-state/internal/domain"
)

var crab = domain.Product{ID: "p1", Name: "Crab", Price: 99.5, ImageURL: "/images/crab.jpg"}

// TestAddItemDistinctProductsCountsEachCall tests that adding n distinct products gives cartCount n
func TestAddItemDistinctProductsCountsEachCall(t *testing.T) {
	env := newTestEnv(Options{})

	for i := 0; i < 7; i++ {
		product := domain.Product{ID: fmt.Sprintf("p%d", i), Name: "item", Price: 1}
		if err := env.container.AddItem(product, nil); err != nil {
			t.Fatalf("expected no error adding %s, got %v", product.ID, err)
		}
	}

	if env.container.CartCount() != 7 {
		t.Errorf("expected cartCount 7, got %d", env.container.CartCount())
	}
	lines := env.container.CartLines()
	for i, line := range lines {
		if line.Quantity != 1 {
			t.Errorf("expected quantity 1 for %s, got %d", line.ProductID, line.Quantity)
		}
		if line.ProductID != fmt.Sprintf("p%d", i) {
			t.Errorf("expected add order to be kept, line %d is %s", i, line.ProductID)
		}
	}
}

// TestCrabScenario tests add, add again, then set quantity to zero
func TestCrabScenario(t *testing.T) {
	env := newTestEnv(Options{})
	c := env.container

	_ = c.AddItem(crab, nil)
	if c.CartCount() != 1 || c.TotalPrice() != "99.50" {
		t.Errorf("expected count 1 and total 99.50, got %d and %s", c.CartCount(), c.TotalPrice())
	}

	_ = c.AddItem(crab, nil)
	if c.CartCount() != 2 || c.TotalPrice() != "199.00" {
		t.Errorf("expected count 2 and total 199.00, got %d and %s", c.CartCount(), c.TotalPrice())
	}
	lines := c.CartLines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", lines)
	}

	c.SetQuantity("p1", 0)
	if len(c.CartLines()) != 0 || c.CartCount() != 0 {
		t.Errorf("expected empty cart, got %+v", c.CartLines())
	}
	if c.TotalPrice() != "0.00" {
		t.Errorf("expected total 0.00, got %s", c.TotalPrice())
	}
}

// TestAddItemDefaultsPlaceholderImage tests the configured placeholder is used for products without image
func TestAddItemDefaultsPlaceholderImage(t *testing.T) {
	env := newTestEnv(Options{PlaceholderImage: "/img/none.png"})

	_ = env.container.AddItem(domain.Product{ID: "p2", Name: "Shrimp", Price: 5}, nil)

	if got := env.container.CartLines()[0].ImageURL; got != "/img/none.png" {
		t.Errorf("expected placeholder image, got %q", got)
	}
}

// TestAddItemWithOriginTriggersFlyOnly tests that an add with a position fires the fly signal and no notification
func TestAddItemWithOriginTriggersFlyOnly(t *testing.T) {
	env := newTestEnv(Options{})
	origin := &domain.OriginEvent{Target: &domain.Rect{Left: 10, Top: 20, Width: 40, Height: 10}}

	_ = env.container.AddItem(crab, origin)

	fly := env.container.FlySignal()
	if fly.SequenceID != 1 {
		t.Errorf("expected fly sequence 1, got %d", fly.SequenceID)
	}
	if fly.Origin == nil || fly.Origin.X != 30 || fly.Origin.Y != 25 {
		t.Errorf("expected origin center (30,25), got %+v", fly.Origin)
	}
	if fly.ImageRef != crab.ImageURL {
		t.Errorf("expected image %q, got %q", crab.ImageURL, fly.ImageRef)
	}
	if env.container.Notification().Visible {
		t.Error("expected no notification when the fly signal fired")
	}
}

// TestAddItemWithoutPositionNotifiesOnly tests that an add without a resolvable position notifies
func TestAddItemWithoutPositionNotifiesOnly(t *testing.T) {
	env := newTestEnv(Options{})

	_ = env.container.AddItem(crab, &domain.OriginEvent{})

	if env.container.FlySignal().SequenceID != 0 {
		t.Error("expected no fly signal without a position")
	}
	n := env.container.Notification()
	if !n.Visible || n.Message != "Added Crab to your cart" {
		t.Errorf("expected add notification, got %+v", n)
	}
}

// TestAddItemRejectsProductWithoutID tests that an invalid product is a no-op
func TestAddItemRejectsProductWithoutID(t *testing.T) {
	env := newTestEnv(Options{})

	err := env.container.AddItem(domain.Product{Name: "ghost"}, nil)
	if !errors.Is(err, domain.ErrInvalidProduct) {
		t.Errorf("expected ErrInvalidProduct, got %v", err)
	}
	if env.container.CartCount() != 0 || env.storage.Sets() != 0 {
		t.Error("expected no cart change and no write for an invalid product")
	}
}

// TestSetQuantityUnknownProductDoesNotWrite tests that unknown ids are ignored without persistence
func TestSetQuantityUnknownProductDoesNotWrite(t *testing.T) {
	env := newTestEnv(Options{})
	_ = env.container.AddItem(crab, nil)
	before := env.storage.Sets()

	env.container.SetQuantity("missing", 3)
	env.container.AdjustQuantity("missing", 1)

	if env.storage.Sets() != before {
		t.Errorf("expected no writes, got %d new writes", env.storage.Sets()-before)
	}
}

// TestSetQuantityNeverLeavesNonPositiveLines tests negative and zero quantities remove the line
func TestSetQuantityNeverLeavesNonPositiveLines(t *testing.T) {
	env := newTestEnv(Options{})
	c := env.container
	_ = c.AddItem(crab, nil)
	_ = c.AddItem(domain.Product{ID: "p2", Name: "Eel", Price: 3}, nil)

	c.SetQuantity("p1", 5)
	c.SetQuantity("p2", -4)

	lines := c.CartLines()
	if len(lines) != 1 || lines[0].ProductID != "p1" || lines[0].Quantity != 5 {
		t.Errorf("expected only p1 with quantity 5, got %+v", lines)
	}
}

// TestAdjustQuantityStepper tests +1 and -1 steps down to removal
func TestAdjustQuantityStepper(t *testing.T) {
	env := newTestEnv(Options{})
	c := env.container
	_ = c.AddItem(crab, nil)

	c.AdjustQuantity("p1", 1)
	if c.Count("p1") != 2 {
		t.Errorf("expected quantity 2, got %d", c.Count("p1"))
	}
	c.AdjustQuantity("p1", -1)
	c.AdjustQuantity("p1", -1)
	if c.Count("p1") != 0 || len(c.CartLines()) != 0 {
		t.Errorf("expected the line to be removed, got %+v", c.CartLines())
	}
}

// TestRemoveItemAbsentStillPersists tests that remove writes even for an unknown id
func TestRemoveItemAbsentStillPersists(t *testing.T) {
	env := newTestEnv(Options{})
	_ = env.container.AddItem(crab, nil)
	before := env.storage.Sets()

	env.container.RemoveItem("missing")

	if env.storage.Sets() != before+1 {
		t.Errorf("expected exactly one write, got %d", env.storage.Sets()-before)
	}
	if env.container.Count("p1") != 1 {
		t.Error("expected p1 to stay in the cart")
	}
}

// TestClearCartPersistsEmptyList tests that clearing stores an empty JSON list
func TestClearCartPersistsEmptyList(t *testing.T) {
	env := newTestEnv(Options{})
	_ = env.container.AddItem(crab, nil)

	env.container.ClearCart()

	raw, ok, _ := env.storage.GetItem(env.container.Keys().Cart)
	if !ok || raw != "[]" {
		t.Errorf("expected stored [], got %q (ok=%v)", raw, ok)
	}
}

// TestTotalPriceHasTwoDecimals tests the exact sum is rendered with two decimals
func TestTotalPriceHasTwoDecimals(t *testing.T) {
	env := newTestEnv(Options{})
	c := env.container
	_ = c.AddItem(domain.Product{ID: "a", Name: "a", Price: 0.1}, nil)
	_ = c.AddItem(domain.Product{ID: "a", Name: "a", Price: 0.1}, nil)
	_ = c.AddItem(domain.Product{ID: "a", Name: "a", Price: 0.1}, nil)
	_ = c.AddItem(domain.Product{ID: "b", Name: "b", Price: 12}, nil)

	if c.TotalPrice() != "12.30" {
		t.Errorf("expected 12.30, got %s", c.TotalPrice())
	}
}

// TestCartRoundTripThroughStorage tests a reload restores the identical ordered lines
func TestCartRoundTripThroughStorage(t *testing.T) {
	env := newTestEnv(Options{})
	_ = env.container.AddItem(domain.Product{ID: "z", Name: "Zander", Price: 8.25}, nil)
	_ = env.container.AddItem(crab, nil)
	_ = env.container.AddItem(crab, nil)
	_ = env.container.AddItem(domain.Product{ID: "a", Name: "Abalone", Price: 30}, nil)

	reloaded := env.reopen(Options{})

	if !reflect.DeepEqual(env.container.CartLines(), reloaded.CartLines()) {
		t.Errorf("expected identical lines after reload:\n%+v\n%+v", env.container.CartLines(), reloaded.CartLines())
	}
}

// TestCartWriteFailureKeepsMemoryState tests that a failed write does not undo the mutation
func TestCartWriteFailureKeepsMemoryState(t *testing.T) {
	env := newTestEnv(Options{})
	env.storage.failOn[env.container.Keys().Cart] = domain.ErrQuotaExceeded

	if err := env.container.AddItem(crab, nil); err != nil {
		t.Fatalf("expected storage failure to stay hidden, got %v", err)
	}
	if env.container.CartCount() != 1 {
		t.Errorf("expected in-memory cart to hold the item, got count %d", env.container.CartCount())
	}
}

// TestConcurrentAddItemIsSerialized tests that parallel adds are all counted
func TestConcurrentAddItemIsSerialized(t *testing.T) {
	env := newTestEnv(Options{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = env.container.AddItem(crab, nil)
		}()
	}
	wg.Wait()

	if env.container.Count("p1") != 50 {
		t.Errorf("expected quantity 50, got %d", env.container.Count("p1"))
	}
	var stored []domain.CartLine
	raw, _, _ := env.storage.GetItem(env.container.Keys().Cart)
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || len(stored) != 1 || stored[0].Quantity != 50 {
		t.Errorf("expected stored quantity 50, got %s (err=%v)", raw, err)
	}
}
