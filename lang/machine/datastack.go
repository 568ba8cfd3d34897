package machine

import "ippcode20/lang/types"

// dataStack is the typed LIFO shared by PUSHS/POPS, CLEARS and every
// S-suffixed arithmetic/logic/comparison/conversion/jump opcode. Operations
// are O(1); there is no capacity limit beyond memory.
type dataStack struct {
	values []types.Value
}

func (s *dataStack) push(v types.Value) {
	s.values = append(s.values, v)
}

func (s *dataStack) pop() (types.Value, error) {
	if len(s.values) == 0 {
		return nil, errMissingValue("data stack is empty")
	}
	n := len(s.values) - 1
	v := s.values[n]
	s.values = s.values[:n]
	return v, nil
}

func (s *dataStack) clear() {
	s.values = s.values[:0]
}

// pop2 pops the top two values, returning them as (top, second-from-top) —
// i.e. (b, a) for a stack pushed a then b — the order every S-suffixed
// binary opcode needs.
func (s *dataStack) pop2() (top, second types.Value, err error) {
	top, err = s.pop()
	if err != nil {
		return nil, nil, err
	}
	second, err = s.pop()
	if err != nil {
		return nil, nil, err
	}
	return top, second, nil
}
