package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog maps object types to their grid roles. It replaces the string
// literals the legacy build step scattered through its scan loop with a
// single inspectable table. Types absent from the table are ignored.
type Catalog map[ObjectType]Role

// DefaultCatalog returns the classification the stock levels were authored
// against: walls and pre-placed enemies block, the AI enemy pursues, the
// player is the target, and goals are decoration as far as navigation goes.
func DefaultCatalog() Catalog {
	return Catalog{
		ObjectWall:    RoleBlocking,
		ObjectEnemy:   RoleBlocking,
		ObjectAIEnemy: RolePursuer,
		ObjectPlayer:  RoleTarget,
		ObjectGoal:    RoleIgnored,
	}
}

// Role resolves the role for an object type. Unknown types are ignored.
func (c Catalog) Role(t ObjectType) Role {
	if role, ok := c[t]; ok {
		return role
	}
	return RoleIgnored
}

type catalogFile struct {
	Types map[string]string `yaml:"types"`
}

// LoadCatalog reads a YAML role table from disk. See config/catalog.yaml for
// the shipped default.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: load catalog %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("world: catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes a YAML role table. Every entry must name one of the
// four defined roles; anything else is a config error, not a silent ignore,
// so typos in authored tables surface immediately.
func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	catalog := make(Catalog, len(file.Types))
	for name, role := range file.Types {
		switch Role(role) {
		case RoleIgnored, RoleBlocking, RolePursuer, RoleTarget:
			catalog[ObjectType(name)] = Role(role)
		default:
			return nil, fmt.Errorf("type %q has unknown role %q", name, role)
		}
	}
	return catalog, nil
}
