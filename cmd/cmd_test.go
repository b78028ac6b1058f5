package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOrderCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"order"})
	defer rootCmd.SetOut(nil)

	if err := Execute(); err != nil {
		t.Fatalf("order failed: %v", err)
	}

	want := "1. product\n2. book\n3. category\n4. expiring_product\n5. product_category\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}
}

func TestGenerateCommandWritesSQL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "seed.sql")
	rootCmd.SetArgs([]string{
		"generate",
		"--provider", "sqlite",
		"--format", "sql",
		"--out", out,
		"--seed", "7",
		"--products", "5",
		"--categories", "2",
		"--brands", "1",
		"--categories-per-product", "1",
	})

	if err := Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	content := string(data)

	if n := strings.Count(content, `INSERT INTO "product" `); n != 5 {
		t.Errorf("Expected 5 product inserts, got %d", n)
	}
	if n := strings.Count(content, `INSERT INTO "category" `); n != 2 {
		t.Errorf("Expected 2 category inserts, got %d", n)
	}
	if n := strings.Count(content, `INSERT INTO "product_category" `); n != 5 {
		t.Errorf("Expected 5 product_category inserts, got %d", n)
	}
}
