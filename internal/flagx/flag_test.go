package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-d", "civicpay.db", "-x", "ignored"},
			allowed: []string{"-d"},
			want:    []string{"-d", "civicpay.db"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--database=civicpay.db", "--other=1"},
			allowed: []string{"--database"},
			want:    []string{"--database=civicpay.db"},
		},
		{
			name:    "flag followed by another flag keeps only the flag",
			args:    []string{"-d", "-g", "2"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "both dash spellings allowed together",
			args:    []string{"--config=other.json", "-c", "conf.json"},
			allowed: []string{"-c", "--c", "-config", "--config"},
			want:    []string{"--config=other.json", "-c", "conf.json"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: []string{"-z"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cmd", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"cmd", "--config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"cmd"}
	assert.Equal(t, "", JsonConfigFlags())
}
