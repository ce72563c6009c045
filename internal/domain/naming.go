package domain

import (
	"regexp"
	"strings"
)

// NamingTags são os metadados extraídos do nome do anúncio quando ele segue a convenção
// MARCA_B<lote>_ANGULO_PUBLICO_CRIADOR[_EDITOR][_..._V<versão>]
type NamingTags struct {
	Brand    string  `json:"brand"`
	Batch    string  `json:"batch"`
	Angle    string  `json:"angle"`
	Audience string  `json:"audience"`
	Creator  string  `json:"creator"`
	Editor   *string `json:"editor,omitempty"`
	Version  *string `json:"version,omitempty"`
}

var (
	adNamePattern  = regexp.MustCompile(`^[^_\s]+(?:_[^_]+){4,8}$`)
	batchPattern   = regexp.MustCompile(`^B\d+$`)
	versionPattern = regexp.MustCompile(`^[Vv]\d+$`)
)

// ParseAdName decompõe o nome do anúncio. Retorna nil quando o nome não segue a
// convenção, o que é o caso mais comum e não é um erro.
func ParseAdName(name string) *NamingTags {
	name = strings.TrimSpace(name)
	if !adNamePattern.MatchString(name) {
		return nil
	}

	segments := strings.Split(name, "_")
	for _, s := range segments {
		if strings.TrimSpace(s) == "" {
			return nil
		}
	}

	if !batchPattern.MatchString(segments[1]) {
		return nil
	}

	tags := &NamingTags{
		Brand:    segments[0],
		Batch:    segments[1],
		Angle:    segments[2],
		Audience: segments[3],
		Creator:  segments[4],
	}

	for i, s := range segments[5:] {
		if versionPattern.MatchString(s) {
			v := strings.ToUpper(s)
			tags.Version = &v
			break
		}
		if i == 0 {
			editor := s
			tags.Editor = &editor
		}
	}

	return tags
}
