package validators

import "context"

// Chain is an ordered sequence of rules. Validate runs them in the order
// they were linked and stops at the first failure; later rules never run.
//
// Chain is itself a Rule, so chains may be nested.
type Chain struct {
	rules []Rule
}

// NewChain starts a chain with head as its first rule.
func NewChain(head Rule) *Chain {
	c := &Chain{rules: make([]Rule, 0, 2)}
	return c.LinkWith(head)
}

// LinkWith appends next to the chain and returns the chain.
func (c *Chain) LinkWith(next Rule) *Chain {
	if next != nil {
		c.rules = append(c.rules, next)
	}
	return c
}

// Len returns the number of linked rules.
func (c *Chain) Len() int {
	return len(c.rules)
}

// Validate runs the linked rules and returns the first violation.
func (c *Chain) Validate(ctx context.Context) error {
	for _, rule := range c.rules {
		if err := rule.Validate(ctx); err != nil {
			return err
		}
	}
	return nil
}
