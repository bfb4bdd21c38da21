package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/awlodge/adventofcode/internal/y2025"
	"github.com/awlodge/adventofcode/pkg/errors"
)

const configFile = "config.toml"

// Config holds user defaults read from the TOML config file.
type Config struct {
	// Year is the puzzle year used when --year is not given.
	Year int `toml:"year" validate:"min=2015,max=2100"`

	// InputDir holds inputs laid out as <year>/day<NN>.txt.
	InputDir string `toml:"input_dir" validate:"required"`

	// NoCache disables the answer cache.
	NoCache bool `toml:"no_cache"`

	// CacheTTL bounds how long answers stay cached; zero keeps them.
	CacheTTL time.Duration `toml:"cache_ttl" validate:"gte=0"`
}

func defaultConfig() Config {
	return Config{
		Year:     y2025.Year,
		InputDir: "inputs",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// loadConfig reads the config file at path, or at the default location
// when path is empty. A missing default file yields the defaults; a missing
// explicit file is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return defaultConfig(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			msgs[i] = fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		} else {
			msgs[i] = fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
