package multiview

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		errMsg string
	}{
		{"too few classes", Config{Classes: 1, Views: 2, ClassifierDims: [][]int{{2}, {2}}}, "classes should be >= 2"},
		{"too few views", Config{Classes: 2, Views: 1, ClassifierDims: [][]int{{2}}}, "views should be >= 2"},
		{"negative lambda", Config{Classes: 2, Views: 2, LambdaCon: -1, ClassifierDims: [][]int{{2}, {2}}}, "lambda_con should be >= 0"},
		{"missing dims", Config{Classes: 2, Views: 2}, `"classifier_dims" is required`},
		{"wrong dims count", Config{Classes: 2, Views: 2, ClassifierDims: [][]int{{2}}}, "one entry per view"},
		{"empty view dims", Config{Classes: 2, Views: 2, ClassifierDims: [][]int{{2}, {}}}, "classifier_dims[1] should not be empty"},
		{"bad width", Config{Classes: 2, Views: 2, ClassifierDims: [][]int{{2}, {0}}}, "classifier_dims[1][0] should be >= 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate("conf.json")
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.errMsg)
		})
	}

	valid := Config{Classes: 3, Views: 2, LambdaCon: 0.5, ClassifierDims: [][]int{{4, 3}, {6}}}
	test.That(t, valid.Validate("conf.json"), test.ShouldBeNil)
}

func TestLoadConfig(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)

	dir := t.TempDir()

	badJSON := filepath.Join(dir, "bad.json")
	test.That(t, os.WriteFile(badJSON, []byte("{"), 0o600), test.ShouldBeNil)
	_, err = LoadConfig(badJSON)
	test.That(t, err, test.ShouldNotBeNil)

	invalid := filepath.Join(dir, "invalid.json")
	test.That(t, os.WriteFile(invalid,
		[]byte(`{"classes": 1, "views": 2, "classifier_dims": [[2], [2]]}`), 0o600), test.ShouldBeNil)
	_, err = LoadConfig(invalid)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "classes should be >= 2")

	good := filepath.Join(dir, "good.json")
	test.That(t, os.WriteFile(good, []byte(`{
		"classes": 3,
		"views": 2,
		"lambda_con": 0.5,
		"classifier_dims": [[4, 3], [6]]
	}`), 0o600), test.ShouldBeNil)
	config, err := LoadConfig(good)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, config.Classes, test.ShouldEqual, 3)
	test.That(t, config.Views, test.ShouldEqual, 2)
	test.That(t, config.LambdaCon, test.ShouldEqual, 0.5)
	test.That(t, config.ClassifierDims, test.ShouldResemble, [][]int{{4, 3}, {6}})
}
