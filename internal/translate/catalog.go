package translate

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"

	"github.com/toejough/argrouter/internal/errcode"
)

// Catalog is a translation table for one language, loaded from a file.
//
// Catalog files name the language with a BCP 47 tag and key templates by
// error code identifier:
//
//	lang: fr
//	messages:
//	  UnknownArgument: Argument inconnu
//	  AlreadySet: "L'argument a déjà été défini"
type Catalog struct {
	Lang  language.Tag
	Table Table
}

// LoadTOML decodes a catalog from TOML.
func LoadTOML(r io.Reader) (Catalog, error) {
	var f catalogFile

	_, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return Catalog{}, fmt.Errorf("decoding toml catalog: %w", err)
	}

	return f.catalog()
}

// LoadYAML decodes a catalog from YAML.
func LoadYAML(r io.Reader) (Catalog, error) {
	var f catalogFile

	err := yaml.NewDecoder(r).Decode(&f)
	if err != nil {
		return Catalog{}, fmt.Errorf("decoding yaml catalog: %w", err)
	}

	return f.catalog()
}

// unexported variables.
var (
	errGreedyNotLast = errors.New("greedy placeholder must be the last placeholder")
	errInvalidLang   = errors.New("invalid catalog language")
	errUnknownCode   = errors.New("unknown error code")
)

type catalogFile struct {
	Lang     string            `toml:"lang"     yaml:"lang"`
	Messages map[string]string `toml:"messages" yaml:"messages"`
}

func (f catalogFile) catalog() (Catalog, error) {
	tag, err := language.Parse(f.Lang)
	if err != nil {
		return Catalog{}, fmt.Errorf("%w %q: %w", errInvalidLang, f.Lang, err)
	}

	table := make(Table, len(f.Messages))

	for name, tmpl := range f.Messages {
		code, ok := errcode.Parse(name)
		if !ok {
			return Catalog{}, fmt.Errorf("%w: %s", errUnknownCode, name)
		}

		err := checkTemplate(tmpl)
		if err != nil {
			return Catalog{}, err
		}

		table[code] = tmpl
	}

	return Catalog{Lang: tag, Table: table}, nil
}
