package export

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// DocumentStyles controls docx rendering
type DocumentStyles struct {
	Font        string `yaml:"font"`
	TitleSize   int    `yaml:"title_size"`
	HeadingSize int    `yaml:"heading_size"`
	BodySize    int    `yaml:"body_size"`
}

// SlideStyles controls pptx rendering
type SlideStyles struct {
	Font         string `yaml:"font"`
	WidthEMU     int64  `yaml:"width_emu"`
	HeightEMU    int64  `yaml:"height_emu"`
	TitleSize    int    `yaml:"title_size"`
	SubtitleSize int    `yaml:"subtitle_size"`
	BodySize     int    `yaml:"body_size"`
}

// Styles is the embedded rendering configuration
type Styles struct {
	Document DocumentStyles `yaml:"document"`
	Slide    SlideStyles    `yaml:"slide"`
}

var (
	stylesOnce   sync.Once
	loadedStyles Styles
	stylesErr    error
)

// LoadStyles parses the embedded styles configuration once
func LoadStyles() (*Styles, error) {
	stylesOnce.Do(func() {
		if err := yaml.Unmarshal(stylesYAML, &loadedStyles); err != nil {
			stylesErr = fmt.Errorf("parsing embedded styles: %w", err)
		}
	})
	if stylesErr != nil {
		return nil, stylesErr
	}
	return &loadedStyles, nil
}
