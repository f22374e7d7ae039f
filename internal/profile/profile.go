// Package profile loads YAML generation profiles: reusable defaults for
// batch vCard runs. Explicit command-line flags still win over profile
// values.
package profile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zarlcorp/infogen/internal/name"
	"github.com/zarlcorp/infogen/internal/phone"
	"github.com/zarlcorp/infogen/internal/vcf"
)

// Profile is one named set of batch defaults.
type Profile struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	Gender          string `yaml:"gender"`
	Carrier         string `yaml:"carrier"`
	UniquePhones    *bool  `yaml:"unique_phones"`
	FileCount       int    `yaml:"file_count"`
	ContactsPerFile int    `yaml:"contacts_per_file"`
	OutputDir       string `yaml:"output_dir"`
	FilenamePrefix  string `yaml:"filename_prefix"`
	NamingMode      string `yaml:"naming_mode"`
	StartNumber     int    `yaml:"start_number"`
	PlainNumbers    *bool  `yaml:"plain_numbers"`

	Source string `yaml:"-"`
}

// FromYAML parses a raw YAML profile definition.
func FromYAML(data string) (*Profile, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, errors.New("profile YAML is empty")
	}

	var p Profile
	if err := yaml.Unmarshal([]byte(trimmed), &p); err != nil {
		return nil, fmt.Errorf("parse profile YAML: %w", err)
	}
	if p.Name == "" {
		return nil, errors.New("profile missing required field 'name'")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile loads and validates a profile from a YAML file.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file %s: %w", path, err)
	}

	p, err := FromYAML(string(data))
	if err != nil {
		return nil, err
	}
	p.Source = path

	return p, nil
}

// Validate checks enum fields and counts.
func (p *Profile) Validate() error {
	switch name.Gender(p.Gender) {
	case "", name.Boy, name.Girl, name.All:
	default:
		return fmt.Errorf("profile %s: invalid gender %q", p.Name, p.Gender)
	}

	switch phone.Carrier(p.Carrier) {
	case "", phone.Mobile, phone.Unicom, phone.Telecom, phone.Virtual:
	default:
		return fmt.Errorf("profile %s: invalid carrier %q", p.Name, p.Carrier)
	}

	switch vcf.NamingMode(p.NamingMode) {
	case "", vcf.NamingTimestamp, vcf.NamingCustomNumber:
	default:
		return fmt.Errorf("profile %s: invalid naming mode %q", p.Name, p.NamingMode)
	}

	if p.FileCount < 0 {
		return fmt.Errorf("profile %s: file_count must be >= 0", p.Name)
	}
	if p.ContactsPerFile < 0 {
		return fmt.Errorf("profile %s: contacts_per_file must be >= 0", p.Name)
	}
	if p.StartNumber < 0 {
		return fmt.Errorf("profile %s: start_number must be >= 0", p.Name)
	}

	return nil
}

// Apply copies the profile's set fields onto opts; unset fields leave
// opts untouched.
func (p *Profile) Apply(opts *vcf.BatchOptions) {
	if p.Gender != "" {
		opts.Gender = name.Gender(p.Gender)
	}
	if p.Carrier != "" {
		opts.Carrier = phone.Carrier(p.Carrier)
	}
	if p.UniquePhones != nil {
		opts.UniquePhones = *p.UniquePhones
	}
	if p.FileCount > 0 {
		opts.FileCount = p.FileCount
	}
	if p.ContactsPerFile > 0 {
		opts.ContactsPerFile = p.ContactsPerFile
	}
	if p.OutputDir != "" {
		opts.OutputDir = p.OutputDir
	}
	if p.FilenamePrefix != "" {
		opts.FilenamePrefix = p.FilenamePrefix
	}
	if p.NamingMode != "" {
		opts.NamingMode = vcf.NamingMode(p.NamingMode)
	}
	if p.StartNumber > 0 {
		opts.StartNumber = p.StartNumber
	}
	if p.PlainNumbers != nil {
		opts.PlainNumbers = *p.PlainNumbers
	}
}
