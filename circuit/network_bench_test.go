package circuit

import "testing"

func BenchmarkTransfer(b *testing.B) {
	n, err := NewNetwork(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		if _, err := n.Transfer(1000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewNetwork(b *testing.B) {
	cfg := DefaultConfig()

	b.ResetTimer()

	for b.Loop() {
		if _, err := NewNetwork(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
