package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain",
			in:   "  só texto  ",
			want: "só texto",
		},
		{
			name: "entities without markup",
			in:   "a &amp; b",
			want: "a & b",
		},
		{
			name: "paragraph and list",
			in:   "<p>Trazer <strong>lápis</strong>, borracha.</p><ul><li>Chegar cedo</li><li>Celular desligado</li></ul>",
			want: "Trazer lápis, borracha.\n\n• Chegar cedo\n• Celular desligado",
		},
		{
			name: "line breaks",
			in:   "um<br>dois<br/>três",
			want: "um\ndois\ntrês",
		},
		{
			name: "script dropped",
			in:   "<div>ok<script>alert(1)</script></div>",
			want: "ok",
		},
		{
			name: "collapses spaces",
			in:   "<p>a    b\t c</p>",
			want: "a b c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
