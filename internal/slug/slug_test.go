package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pensão Alimentícia", "pensao-alimenticia"},
		{"Direito do Consumidor", "direito-do-consumidor"},
		{"  Golpes no PIX!  ", "golpes-no-pix"},
		{"Multa de Trânsito: como recorrer?", "multa-de-transito-como-recorrer"},
		{"já---hifenizado", "ja-hifenizado"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Generate(tt.in); got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PENSÃO", "pensao"},
		{"Alimentícia", "alimenticia"},
		{"golpes", "golpes"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
