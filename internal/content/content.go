package content

import (
	"fmt"
	"strconv"
)

// Module is one subject area, e.g. "Arrays & Methods".
type Module struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Icon        string    `yaml:"icon"`
	Topics      []Topic   `yaml:"topics"`
	Problems    []Problem `yaml:"problems"`
}

// Topic is a theory passage in lesson markup.
type Topic struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Theory string `yaml:"theory"`
}

// Problem is a coding exercise checked against the console output of its solution.
type Problem struct {
	ID             int    `yaml:"id"`
	Title          string `yaml:"title"`
	Description    string `yaml:"description"` // single line of lesson markup
	StarterCode    string `yaml:"starterCode"`
	ExpectedOutput string `yaml:"expectedOutput"`
	Hint           string `yaml:"hint"`
	Solution       string `yaml:"solution"`
}

// Catalog is an ordered set of modules.
type Catalog struct {
	Modules []Module
}

// Module returns the module with the given id.
func (c *Catalog) Module(id string) (*Module, error) {
	for i := range c.Modules {
		if c.Modules[i].ID == id {
			return &c.Modules[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, id)
}

// IDs returns the module ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		ids[i] = m.ID
	}
	return ids
}

// TopicIDs returns the topic ids in module order.
func (m *Module) TopicIDs() []string {
	ids := make([]string, len(m.Topics))
	for i, t := range m.Topics {
		ids[i] = t.ID
	}
	return ids
}

// Topic returns the topic with the given id.
func (m *Module) Topic(id string) (*Topic, error) {
	for i := range m.Topics {
		if m.Topics[i].ID == id {
			return &m.Topics[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q in module %q", ErrTopicNotFound, id, m.ID)
}

// Problem returns the problem with the given id.
func (m *Module) Problem(id int) (*Problem, error) {
	for i := range m.Problems {
		if m.Problems[i].ID == id {
			return &m.Problems[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d in module %q", ErrProblemNotFound, id, m.ID)
}

// ProblemByRef resolves a problem from a command-line reference: its id, or
// its 1-based position when no problem has that id.
func (m *Module) ProblemByRef(ref string) (*Problem, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrProblemNotFound, ref)
	}
	if p, err := m.Problem(n); err == nil {
		return p, nil
	}
	if n >= 1 && n <= len(m.Problems) {
		return &m.Problems[n-1], nil
	}
	return nil, fmt.Errorf("%w: %d in module %q", ErrProblemNotFound, n, m.ID)
}

// Validate checks required fields and id uniqueness within the module.
func (m *Module) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidModule)
	}
	if m.Title == "" {
		return fmt.Errorf("%w: module %q: missing title", ErrInvalidModule, m.ID)
	}

	topics := make(map[string]bool, len(m.Topics))
	for i, t := range m.Topics {
		if t.ID == "" || t.Title == "" {
			return fmt.Errorf("%w: module %q: topic %d: missing id or title", ErrInvalidModule, m.ID, i+1)
		}
		if topics[t.ID] {
			return fmt.Errorf("%w: module %q: topic %q", ErrDuplicateID, m.ID, t.ID)
		}
		topics[t.ID] = true
	}

	problems := make(map[int]bool, len(m.Problems))
	for i, p := range m.Problems {
		if p.Title == "" {
			return fmt.Errorf("%w: module %q: problem %d: missing title", ErrInvalidModule, m.ID, i+1)
		}
		if problems[p.ID] {
			return fmt.Errorf("%w: module %q: problem %d", ErrDuplicateID, m.ID, p.ID)
		}
		problems[p.ID] = true
	}
	return nil
}
