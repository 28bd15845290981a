package market

import "testing"

func TestFinnhubClientName(t *testing.T) {
	client := NewFinnhubClient("test-key")
	if got := client.Name(); got != "FinnHub" {
		t.Errorf("Name() = %q, want %q", got, "FinnHub")
	}
}
