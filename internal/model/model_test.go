package model

import "testing"

func TestSerializeRoundTrip(t *testing.T) {
	entries := []Entry{
		{Title: "mail", Username: "me@example.com", Password: "hunter2", Category: "work"},
		{Title: "router", Username: "admin", Password: "changeme", Notes: "upstairs"},
	}
	categories := []Category{{Name: "work"}, {Name: "home"}}

	plaintext, err := Serialize(entries, categories)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	gotEntries, err := DeserializeEntries(plaintext)
	if err != nil {
		t.Fatalf("DeserializeEntries failed: %v", err)
	}
	if len(gotEntries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(gotEntries))
	}
	if gotEntries[0].Title != "mail" || gotEntries[0].Password != "hunter2" {
		t.Errorf("Entry mismatch: %+v", gotEntries[0])
	}

	gotCategories, err := DeserializeCategories(plaintext)
	if err != nil {
		t.Fatalf("DeserializeCategories failed: %v", err)
	}
	if len(gotCategories) != 2 || gotCategories[1].Name != "home" {
		t.Errorf("Category mismatch: %+v", gotCategories)
	}
}

func TestEmptyStructure(t *testing.T) {
	plaintext, err := EmptyStructure()
	if err != nil {
		t.Fatalf("EmptyStructure failed: %v", err)
	}

	entries, err := DeserializeEntries(plaintext)
	if err != nil {
		t.Fatalf("DeserializeEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}

	categories, err := DeserializeCategories(plaintext)
	if err != nil {
		t.Fatalf("DeserializeCategories failed: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("Expected no categories, got %d", len(categories))
	}
}

func TestDeserializeGarbage(t *testing.T) {
	if _, err := DeserializeEntries([]byte("not json")); err == nil {
		t.Error("Expected error for malformed payload")
	}
}
