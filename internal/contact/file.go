package contact

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML contact list:
//
//	- id: 1
//	  name: John Doe
//	  phone: 123-456-7890
//	  image: ic_launcher_background
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contacts: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML contact list and validates it.
func Parse(data []byte) (*Store, error) {
	var contacts []Contact
	if err := yaml.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("parse contacts: %w", err)
	}
	if len(contacts) == 0 {
		return nil, fmt.Errorf("parse contacts: empty list: %w", ErrInvalidContact)
	}
	return New(contacts)
}
