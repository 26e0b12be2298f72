package multiview

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// Config describes a multi-view model: how many classes and views it serves,
// the weight of the consistency loss, and the affine layer dimensions of
// each view's encoder. ClassifierDims holds one entry per view; entry v
// starts with view v's feature dimension followed by any hidden widths.
type Config struct {
	Classes        int     `json:"classes"`
	Views          int     `json:"views"`
	LambdaCon      float64 `json:"lambda_con"`
	ClassifierDims [][]int `json:"classifier_dims"`
}

// LoadConfig loads a Config from a json file.
func LoadConfig(file string) (*Config, error) {
	var config Config
	filePath := filepath.Clean(file)
	configFile, err := os.Open(filePath)
	defer goutils.UncheckedErrorFunc(configFile.Close)
	if err != nil {
		return nil, err
	}
	jsonParser := json.NewDecoder(configFile)
	err = jsonParser.Decode(&config)
	if err != nil {
		return nil, err
	}
	err = config.Validate(file)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate ensures all parts of the config are valid.
func (config *Config) Validate(path string) error {
	if config.Classes < 2 {
		return goutils.NewConfigValidationError(path, errors.New("classes should be >= 2"))
	}
	if config.Views < 2 {
		return goutils.NewConfigValidationError(path, errors.New("views should be >= 2"))
	}
	if config.LambdaCon < 0 {
		return goutils.NewConfigValidationError(path, errors.New("lambda_con should be >= 0"))
	}
	if len(config.ClassifierDims) == 0 {
		return goutils.NewConfigValidationFieldRequiredError(path, "classifier_dims")
	}
	if len(config.ClassifierDims) != config.Views {
		return goutils.NewConfigValidationError(path,
			errors.Errorf("classifier_dims should have one entry per view (%d), got %d", config.Views, len(config.ClassifierDims)))
	}
	for v, dims := range config.ClassifierDims {
		if len(dims) == 0 {
			return goutils.NewConfigValidationError(path, errors.Errorf("classifier_dims[%d] should not be empty", v))
		}
		for i, d := range dims {
			if d < 1 {
				return goutils.NewConfigValidationError(path, errors.Errorf("classifier_dims[%d][%d] should be >= 1", v, i))
			}
		}
	}
	return nil
}
