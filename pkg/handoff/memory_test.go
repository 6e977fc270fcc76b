package handoff

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(zap.NewNop())
}

func TestSaveAndConsume(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	if ok := store.Save(ctx, "42", "tok-abc", "<form>pay</form>"); !ok {
		t.Fatal("Save() = false, want true")
	}

	form := store.Consume(ctx, "42", false)
	if form == nil {
		t.Fatal("Consume() = nil, want stored form")
	}
	if form.Token != "tok-abc" {
		t.Errorf("Token = %q, want tok-abc", form.Token)
	}
	if form.FormHTML != "<form>pay</form>" {
		t.Errorf("FormHTML = %q, want stored fragment", form.FormHTML)
	}
	if form.CreatedAt.IsZero() {
		t.Error("CreatedAt zero, want save timestamp")
	}
}

func TestSaveRejectsMissingFields(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	tests := []struct {
		name          string
		reservationID string
		token         string
		formHTML      string
	}{
		{"missing id", "", "tok", "<form/>"},
		{"id without digits", "abc", "tok", "<form/>"},
		{"missing token", "42", "", "<form/>"},
		{"missing form", "42", "tok", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ok := store.Save(ctx, tt.reservationID, tt.token, tt.formHTML); ok {
				t.Errorf("Save(%q, %q, %q) = true, want false", tt.reservationID, tt.token, tt.formHTML)
			}
		})
	}
}

func TestPeekIsRepeatable(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	store.Save(ctx, "7", "tok", "<form/>")

	first := store.Consume(ctx, "7", false)
	second := store.Consume(ctx, "7", false)

	if first == nil || second == nil {
		t.Fatal("peek returned nil, want payload both times")
	}
	if first.Token != second.Token || first.FormHTML != second.FormHTML {
		t.Errorf("peek results differ: %+v vs %+v", first, second)
	}
}

func TestConsumeRemovesAtMostOnce(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	store.Save(ctx, "7", "tok", "<form/>")

	if form := store.Consume(ctx, "7", true); form == nil {
		t.Fatal("first Consume(remove) = nil, want payload")
	}
	if form := store.Consume(ctx, "7", true); form != nil {
		t.Errorf("second Consume(remove) = %+v, want nil", form)
	}
}

func TestPeekThenRemoveThenConsume(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	store.Save(ctx, "7", "tok", "<form/>")

	if form := store.Consume(ctx, "7", false); form == nil {
		t.Fatal("peek = nil, want payload")
	}

	store.Remove(ctx, "7")

	if form := store.Consume(ctx, "7", true); form != nil {
		t.Errorf("Consume after Remove = %+v, want nil", form)
	}
}

func TestRemoveAbsentIsSilent(t *testing.T) {
	store := newTestStore()
	store.Remove(context.Background(), "404")
}

func TestConsumeNormalizesIDRepresentation(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	// Stored under a zero-padded representation of the same id
	store.Save(ctx, "0042", "tok", "<form/>")

	form := store.Consume(ctx, "42", true)
	if form == nil {
		t.Fatal("Consume(\"42\") = nil, want entry stored as \"0042\"")
	}
	if again := store.Consume(ctx, "42", true); again != nil {
		t.Errorf("second Consume = %+v, want nil after removal", again)
	}
}

func TestConsumeStripsNonDigits(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.Save(ctx, "42", "tok", "<form/>")

	if form := store.Consume(ctx, "res-42", false); form == nil {
		t.Error("Consume(\"res-42\") = nil, want digit-normalized match")
	}
}

func TestConsumeUnknownID(t *testing.T) {
	store := newTestStore()

	if form := store.Consume(context.Background(), "999", false); form != nil {
		t.Errorf("Consume(unknown) = %+v, want nil", form)
	}
}
