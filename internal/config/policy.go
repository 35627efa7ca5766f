package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"shopping-cart/internal/domain"
	"shopping-cart/internal/service/discount"

	"gopkg.in/yaml.v3"
)

// Policy is the pricing and payment configuration shared by the services.
type Policy struct {
	// Seasons lists the season names the seasonal discount recognizes.
	Seasons        []string               `yaml:"seasons"`
	PaymentMethods []domain.PaymentMethod `yaml:"paymentMethods"`
}

// DefaultPolicy recognizes discount.DefaultSeasons and runs four payment
// methods whose processing times grow with their index.
func DefaultPolicy() Policy {
	return Policy{
		Seasons: append([]string(nil), discount.DefaultSeasons...),
		PaymentMethods: []domain.PaymentMethod{
			{Name: "Method 1", ProcessingTime: 100 * time.Millisecond},
			{Name: "Method 2", ProcessingTime: 200 * time.Millisecond},
			{Name: "Method 3", ProcessingTime: 300 * time.Millisecond},
			{Name: "Method 4", ProcessingTime: 400 * time.Millisecond},
		},
	}
}

// LoadPolicy reads a YAML policy file. An empty path or a missing file yields
// DefaultPolicy; sections absent from the file keep their defaults.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy, nil
		}
		return Policy{}, fmt.Errorf("read policy %s: %w", path, err)
	}
	return ParsePolicy(data)
}

// ParsePolicy decodes YAML policy bytes over DefaultPolicy.
func ParsePolicy(data []byte) (Policy, error) {
	var file Policy
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Policy{}, fmt.Errorf("decode policy: %w", err)
	}

	policy := DefaultPolicy()
	if file.Seasons != nil {
		policy.Seasons = file.Seasons
	}
	if len(file.PaymentMethods) > 0 {
		for _, m := range file.PaymentMethods {
			if m.Name == "" {
				return Policy{}, fmt.Errorf("payment method without name: %w", domain.ErrInvalidArgument)
			}
			if m.ProcessingTime < 0 {
				return Policy{}, fmt.Errorf("payment method %q has negative processing time: %w", m.Name, domain.ErrInvalidArgument)
			}
		}
		policy.PaymentMethods = file.PaymentMethods
	}
	return policy, nil
}
