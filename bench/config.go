package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid benchmark config")

type Config struct {
	MaxElements int     `cfg:"max-elements"`
	Step        int     `cfg:"step"`
	KeyLength   int     `cfg:"key-length"`
	LoadFactor  float64 `cfg:"load-factor"`
	HitRatio    float64 `cfg:"hit-ratio"`
	MaxValue    int     `cfg:"max-value"`
	Seed        int64   `cfg:"seed"`
	Clock       string  `cfg:"clock"`
	Hash        string  `cfg:"hash"`
	Baseline    bool    `cfg:"baseline"`
	EntryLimit  int64   `cfg:"entry-limit"`
}

const (
	ClockCPU  = "cpu"
	ClockWall = "wall"
)

// DefaultConfig mirrors the classic run: 50k to 1M elements in 50k steps,
// 9 character keys and a 0.5 load factor.
func DefaultConfig() Config {
	return Config{
		MaxElements: 1000000,
		Step:        50000,
		KeyLength:   9,
		LoadFactor:  0.5,
		HitRatio:    0.9,
		MaxValue:    100000,
		Clock:       ClockCPU,
		Hash:        HashDJB2,
	}
}

func (c *Config) Validate() error {
	switch {
	case c.MaxElements < 1:
		return fmt.Errorf("%w: max-elements must be positive, got %d", ErrInvalidConfig, c.MaxElements)
	case c.Step < 1:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidConfig, c.Step)
	case c.KeyLength < 1:
		return fmt.Errorf("%w: key-length must be positive, got %d", ErrInvalidConfig, c.KeyLength)
	case !(c.LoadFactor > 0):
		return fmt.Errorf("%w: load-factor must be positive, got %v", ErrInvalidConfig, c.LoadFactor)
	case c.HitRatio < 0 || c.HitRatio > 1:
		return fmt.Errorf("%w: hit-ratio must be within [0, 1], got %v", ErrInvalidConfig, c.HitRatio)
	case c.MaxValue < 1:
		return fmt.Errorf("%w: max-value must be positive, got %d", ErrInvalidConfig, c.MaxValue)
	case c.Clock != ClockCPU && c.Clock != ClockWall:
		return fmt.Errorf("%w: unknown clock %q", ErrInvalidConfig, c.Clock)
	case c.EntryLimit < 0:
		return fmt.Errorf("%w: entry-limit must not be negative, got %d", ErrInvalidConfig, c.EntryLimit)
	}
	if !knownHash(c.Hash) {
		return fmt.Errorf("%w: unknown hash %q", ErrInvalidConfig, c.Hash)
	}
	return nil
}

// LoadConfig reads a "key value" file over DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	return ParseConfig(file)
}

// ParseConfig reads one "key value" pair per line. Lines starting with #
// are comments and unknown keys are ignored.
func ParseConfig(reader io.Reader) (Config, error) {
	res := DefaultConfig()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.TrimSpace(line[pivot+1:])
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}
	if err := fillConfig(&res, m); err != nil {
		return Config{}, err
	}
	return res, nil
}

func fillConfig(c *Config, m map[string]string) error {
	fields := reflect.TypeOf(c).Elem()
	values := reflect.ValueOf(c).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int, reflect.Int64:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
			}
			fieldVal.SetInt(intV)
		case reflect.Float64:
			floatV, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
			}
			fieldVal.SetFloat(floatV)
		case reflect.Bool:
			boolV := val == "yes" || val == "true"
			fieldVal.SetBool(boolV)
		}
	}
	return nil
}
