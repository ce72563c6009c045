package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *NamingTags
	}{
		{
			name:  "Cinco segmentos - apenas campos obrigatórios",
			input: "ACME_B12_dor_mulheres25_ana",
			expected: &NamingTags{
				Brand: "ACME", Batch: "B12", Angle: "dor", Audience: "mulheres25", Creator: "ana",
			},
		},
		{
			name:  "Seis segmentos com editor",
			input: "ACME_B3_prova_lookalike_joao_pedro",
			expected: &NamingTags{
				Brand: "ACME", Batch: "B3", Angle: "prova", Audience: "lookalike", Creator: "joao",
				Editor: stringPtr("pedro"),
			},
		},
		{
			name:  "Sexto segmento é a versão",
			input: "ACME_B3_prova_lookalike_joao_v2",
			expected: &NamingTags{
				Brand: "ACME", Batch: "B3", Angle: "prova", Audience: "lookalike", Creator: "joao",
				Version: stringPtr("V2"),
			},
		},
		{
			name:  "Nove segmentos com editor e versão no final",
			input: "ACME_B7_ugc_broad_maria_lucas_9x16_hook2_V4",
			expected: &NamingTags{
				Brand: "ACME", Batch: "B7", Angle: "ugc", Audience: "broad", Creator: "maria",
				Editor: stringPtr("lucas"), Version: stringPtr("V4"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := ParseAdName(tt.input)
			require.NotNil(t, tags)
			assert.Equal(t, tt.expected, tags)
		})
	}
}

func TestParseAdName_NaoSegueConvencao(t *testing.T) {
	names := []string{
		"",
		"Anúncio de verão",
		"ACME_B12_dor_mulheres",              // quatro segmentos
		"ACME_B1_a_b_c_d_e_f_g_h",            // dez segmentos
		"ACME_lote12_dor_mulheres25_ana",     // lote fora do padrão
		"ACME_B12__mulheres25_ana",           // segmento vazio
		"ACME B12_dor_mulheres25_ana_editor", // espaço na marca
	}

	for _, n := range names {
		assert.Nil(t, ParseAdName(n), n)
	}
}

func stringPtr(s string) *string {
	return &s
}
