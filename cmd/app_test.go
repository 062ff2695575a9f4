package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
)

// useTempItemsFile points the global items flag at a file under t.TempDir.
func useTempItemsFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "items.jsonl")
	if content != "" {
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write temp items file: %v", err)
		}
	}
	oldItemsFile := itemsFile
	itemsFile = &name
	t.Cleanup(func() { itemsFile = oldItemsFile })
	return name
}

func TestDecodeItemsMissingFileIsEmptyInventory(t *testing.T) {
	useTempItemsFile(t, "")
	items, err := DecodeItems()
	if err != nil {
		t.Fatalf("DecodeItems() failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("DecodeItems() = %d items, want 0", len(items))
	}
}

func TestItemsFileRoundTrip(t *testing.T) {
	useTempItemsFile(t, "")
	items := []tracker.InventoryItem{
		{ID: "itm_1", SKU: "RICE-001", Name: "Rice", Unit: "bag", Quantity: tracker.Q(10)},
	}
	if err := EncodeItems(items); err != nil {
		t.Fatalf("EncodeItems() failed: %v", err)
	}
	back, err := DecodeItems()
	if err != nil {
		t.Fatalf("DecodeItems() failed: %v", err)
	}
	if len(back) != 1 || back[0].ID != "itm_1" || !back[0].Quantity.Equal(tracker.Q(10)) {
		t.Errorf("DecodeItems() = %+v, want the encoded item back", back)
	}
}

func TestReceiveCmdUpdatesItemsFile(t *testing.T) {
	useTempItemsFile(t, `{"id":"itm_1","sku":"RICE-001","name":"Rice","unit":"bag","quantity":10}
`)

	cmd := &receiveCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-id", "itm_1", "-q", "5", "-loc", "cold room"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	items, err := DecodeItems()
	if err != nil {
		t.Fatalf("DecodeItems() failed: %v", err)
	}
	if !items[0].Quantity.Equal(tracker.Q(15)) {
		t.Errorf("quantity = %v, want 15", items[0].Quantity)
	}
	if items[0].Location != "cold room" {
		t.Errorf("location = %q, want %q", items[0].Location, "cold room")
	}
}

func TestSeedCmdWritesItemsFile(t *testing.T) {
	name := useTempItemsFile(t, "")

	cmd := &seedCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-industry", "restaurant", "-n", "5"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("reading items file failed: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 5 {
		t.Errorf("items file holds %d lines, want 5", got)
	}
}
