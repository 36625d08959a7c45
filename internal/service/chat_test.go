package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Neeraj-Gupta12/PropBot/internal/catalog"
	"github.com/Neeraj-Gupta12/PropBot/internal/datasource"
	"github.com/Neeraj-Gupta12/PropBot/internal/model"
	"github.com/Neeraj-Gupta12/PropBot/internal/nlp"
)

func chatFixture(t *testing.T) *ChatService {
	t.Helper()

	src := &datasource.Static{
		Basics: []model.Basic{
			{ID: "p1", Title: "Sunny Apartment", Location: "New York, NY", Price: 450000, Type: "apartment", CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "p2", Title: "Beach Villa", Location: "Miami, FL", Price: 1200000, Type: "villa", CreatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
		},
		Characteristics: []model.Characteristic{
			{ID: "p1", Bedrooms: 3, Bathrooms: 2, Rating: 4.5, Amenities: []string{"Swimming Pool", "Gym"}},
			{ID: "p2", Bedrooms: 5, Bathrooms: 4, Rating: 4.9, Amenities: []string{"Private Garden"}},
		},
	}
	store := catalog.NewStore(src)
	if _, err := store.Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	interp := nlp.NewInterpreter(nlp.NewRuleBased("New York", "Miami"))
	return NewChatService(store, interp, nil)
}

func TestChatRespond_Greeting(t *testing.T) {
	svc := chatFixture(t)

	resp, err := svc.Respond(context.Background(), "hi, my name is alex")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(resp.Message, "Hello Alex") {
		t.Errorf("greeting does not address the user by name: %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "PropBot") {
		t.Errorf("greeting does not introduce the bot: %q", resp.Message)
	}
	if len(resp.Properties) != 0 {
		t.Errorf("greeting must not return properties, got %d", len(resp.Properties))
	}
	if resp.Properties == nil {
		t.Error("properties must be an empty list, not nil")
	}
}

func TestChatRespond_Identity(t *testing.T) {
	svc := chatFixture(t)

	resp, err := svc.Respond(context.Background(), "who are you?")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if !strings.Contains(resp.Message, "agent Mira") {
		t.Errorf("identity reply missing the agent line: %q", resp.Message)
	}
}

func TestChatRespond_QueryEchoesPreferences(t *testing.T) {
	svc := chatFixture(t)

	resp, err := svc.Respond(context.Background(), "I want a 3 bedroom apartment in New York under 500000")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	if len(resp.Properties) != 1 || resp.Properties[0].ID != "p1" {
		t.Fatalf("properties = %v, want just p1", resp.Properties)
	}
	for _, part := range []string{"in New York", "with 3 bedrooms", "under $500000"} {
		if !strings.Contains(resp.Message, part) {
			t.Errorf("reply %q missing %q", resp.Message, part)
		}
	}
}

func TestChatRespond_KeywordFallback(t *testing.T) {
	svc := chatFixture(t)

	// "garden" only appears in p2's amenities; no entity is extractable, so
	// the fallback scan over all text fields must find it.
	resp, err := svc.Respond(context.Background(), "something with a garden")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if len(resp.Properties) != 1 || resp.Properties[0].ID != "p2" {
		t.Fatalf("properties = %v, want just p2", resp.Properties)
	}
	if !strings.Contains(resp.Message, "matching your query") {
		t.Errorf("unexpected fallback reply: %q", resp.Message)
	}
}

func TestChatRespond_NoMatches(t *testing.T) {
	svc := chatFixture(t)

	resp, err := svc.Respond(context.Background(), "castle moat drawbridge")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if len(resp.Properties) != 0 {
		t.Fatalf("properties = %v, want none", resp.Properties)
	}
	if !strings.Contains(resp.Message, "couldn't find any properties") {
		t.Errorf("unexpected no-match reply: %q", resp.Message)
	}
}

func TestChatRespond_BlankMessage(t *testing.T) {
	svc := chatFixture(t)

	if _, err := svc.Respond(context.Background(), "   "); !errors.Is(err, nlp.ErrInvalidInput) {
		t.Errorf("Respond() error = %v, want nlp.ErrInvalidInput", err)
	}
}
