package css

import "strings"

// Inspect traverses the tree rooted at n depth-first, calling f for
// each node. If f returns false, the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Document:
		for _, item := range n.Items {
			Inspect(item, f)
		}
	case *MediaQuery:
		for _, item := range n.Items {
			Inspect(item, f)
		}
	case *DeclarationBlock:
		for _, r := range n.Rules {
			Inspect(r, f)
		}
	case *AtRule:
		for _, r := range n.Rules {
			Inspect(r, f)
		}
	case *Import:
		Inspect(n.Location, f)
	case *Charset:
		Inspect(n.Name, f)
	case *Rule:
		inspectList(n.Values, f)
	case *Color:
		for _, ch := range n.Channels {
			Inspect(ch.Value, f)
		}
	case *URL:
		Inspect(n.Location, f)
	case *Function:
		inspectList(n.Args, f)
	case *Slashed:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	}
}

func inspectList(list ValueList, f func(Node) bool) {
	for _, group := range list {
		for _, v := range group {
			Inspect(v, f)
		}
	}
}

// AllDeclarationBlocks returns every declaration block in l,
// including those nested in media queries.
func AllDeclarationBlocks(l List) []*DeclarationBlock {
	var blocks []*DeclarationBlock
	Inspect(l, func(n Node) bool {
		if b, ok := n.(*DeclarationBlock); ok {
			blocks = append(blocks, b)
			return false
		}
		return true
	})
	return blocks
}

// AllRuleSets returns every declaration block and unknown at-rule in l.
func AllRuleSets(l List) []RuleSet {
	var sets []RuleSet
	Inspect(l, func(n Node) bool {
		if rs, ok := n.(RuleSet); ok {
			sets = append(sets, rs)
			return false
		}
		return true
	})
	return sets
}

// AllValues returns every value under n, in document order.
// Values nested inside others, such as function arguments and the
// halves of a slashed pair, follow their container.
func AllValues(n Node) []Value {
	var values []Value
	Inspect(n, func(n Node) bool {
		if v, ok := n.(Value); ok {
			values = append(values, v)
		}
		return true
	})
	return values
}

// RulesWithPrefix returns the rules of rs whose property starts with
// prefix. An empty prefix matches every rule.
func RulesWithPrefix(rs RuleSet, prefix string) []*Rule {
	var rules []*Rule
	for _, r := range rs.RuleList() {
		if strings.HasPrefix(r.Property, prefix) {
			rules = append(rules, r)
		}
	}
	return rules
}

// RemoveRule removes r from rs and reports whether it was present.
func RemoveRule(rs RuleSet, r *Rule) bool {
	rules := rs.RuleList()
	for i, rule := range rules {
		if rule == r {
			rs.setRules(append(rules[:i:i], rules[i+1:]...))
			return true
		}
	}
	return false
}
