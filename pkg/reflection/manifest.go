package reflection

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest is a serialized reflection dump, typically produced by a script
// running inside the documented language's own runtime.
type Manifest struct {
	Classes []ClassSnapshot `yaml:"classes"`
}

// LoadManifest decodes a YAML [Manifest].
// Members with no declaring class are assumed to be declared by the class listing them.
func LoadManifest(r io.Reader) ([]Class, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var manifest Manifest
	if err := dec.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to decode manifest")
	}
	classes := make([]Class, 0, len(manifest.Classes))
	for _, class := range manifest.Classes {
		classes = append(classes, applyManifestDefaults(class))
	}
	return classes, nil
}

// LoadManifestFiles loads every manifest matching the doublestar glob patterns.
// Files are read in lexical order, each pattern has to match at least one file.
func LoadManifestFiles(patterns ...string) ([]Class, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid manifest pattern %q", pattern)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no manifest matches %q", pattern)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	paths = slices.Compact(paths)

	var classes []Class
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read manifest %s", path)
		}
		loaded, err := LoadManifest(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load manifest %s", path)
		}
		classes = append(classes, loaded...)
	}
	return classes, nil
}

func applyManifestDefaults(class ClassSnapshot) ClassSnapshot {
	fullName := class.FullName()
	if class.ClassKind == "" {
		class.ClassKind = KindClass
	}
	class.ConstantList = slices.Clone(class.ConstantList)
	for i := range class.ConstantList {
		setDeclaringClass(&class.ConstantList[i].MemberSnapshot, fullName)
	}
	class.PropertyList = slices.Clone(class.PropertyList)
	for i := range class.PropertyList {
		setDeclaringClass(&class.PropertyList[i].MemberSnapshot, fullName)
	}
	class.MethodList = slices.Clone(class.MethodList)
	for i := range class.MethodList {
		method := &class.MethodList[i]
		setDeclaringClass(&method.MemberSnapshot, fullName)
		method.Params = slices.Clone(method.Params)
		for j := range method.Params {
			if method.Params[j].DefaultValue != "" {
				method.Params[j].HasDefault = true
			}
		}
	}
	return class
}

func setDeclaringClass(member *MemberSnapshot, fullName string) {
	if member.Declaring == "" {
		member.Declaring = fullName
	}
}
