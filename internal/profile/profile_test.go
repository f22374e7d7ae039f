package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zarlcorp/infogen/internal/name"
	"github.com/zarlcorp/infogen/internal/phone"
	"github.com/zarlcorp/infogen/internal/vcf"
)

const sampleYAML = `
name: bulk-export
description: large unicom batch
gender: girl
carrier: unicom
unique_phones: true
file_count: 20
contacts_per_file: 500
output_dir: ./out
filename_prefix: 客户
naming_mode: custom_number
start_number: 10
plain_numbers: false
`

func TestFromYAML(t *testing.T) {
	p, err := FromYAML(sampleYAML)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}

	if p.Name != "bulk-export" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Gender != "girl" || p.Carrier != "unicom" {
		t.Errorf("gender/carrier = %q/%q", p.Gender, p.Carrier)
	}
	if p.UniquePhones == nil || !*p.UniquePhones {
		t.Error("UniquePhones should be true")
	}
	if p.PlainNumbers == nil || *p.PlainNumbers {
		t.Error("PlainNumbers should be false")
	}
	if p.FileCount != 20 || p.ContactsPerFile != 500 || p.StartNumber != 10 {
		t.Errorf("counts = %d/%d/%d", p.FileCount, p.ContactsPerFile, p.StartNumber)
	}
}

func TestFromYAMLErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty", "   \n"},
		{"garbage", "::not yaml::"},
		{"missing name", "gender: boy"},
		{"bad gender", "name: x\ngender: alien"},
		{"bad carrier", "name: x\ncarrier: att"},
		{"bad naming mode", "name: x\nnaming_mode: uuid"},
		{"negative count", "name: x\nfile_count: -1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromYAML(tc.yaml); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p.Source != path {
		t.Errorf("Source = %q, want %q", p.Source, path)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApply(t *testing.T) {
	p, err := FromYAML(sampleYAML)
	if err != nil {
		t.Fatal(err)
	}

	opts := vcf.BatchOptions{
		FileCount:       1,
		ContactsPerFile: 10,
		OutputDir:       "./contacts",
		UniquePhones:    false,
	}
	p.Apply(&opts)

	if opts.Gender != name.Girl {
		t.Errorf("Gender = %q", opts.Gender)
	}
	if opts.Carrier != phone.Unicom {
		t.Errorf("Carrier = %q", opts.Carrier)
	}
	if !opts.UniquePhones {
		t.Error("UniquePhones not applied")
	}
	if opts.FileCount != 20 || opts.ContactsPerFile != 500 {
		t.Errorf("counts = %d/%d", opts.FileCount, opts.ContactsPerFile)
	}
	if opts.OutputDir != "./out" || opts.FilenamePrefix != "客户" {
		t.Errorf("dir/prefix = %q/%q", opts.OutputDir, opts.FilenamePrefix)
	}
	if opts.NamingMode != vcf.NamingCustomNumber || opts.StartNumber != 10 {
		t.Errorf("naming = %q/%d", opts.NamingMode, opts.StartNumber)
	}
}

func TestApplyUnsetLeavesDefaults(t *testing.T) {
	p, err := FromYAML("name: minimal")
	if err != nil {
		t.Fatal(err)
	}

	opts := vcf.BatchOptions{
		FileCount:       3,
		ContactsPerFile: 50,
		OutputDir:       "./contacts",
		FilenamePrefix:  "通讯录",
		UniquePhones:    true,
		NamingMode:      vcf.NamingTimestamp,
	}
	want := opts
	p.Apply(&opts)

	if opts != want {
		t.Errorf("Apply changed defaults: %+v != %+v", opts, want)
	}
}
