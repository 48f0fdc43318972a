package coeval

import "fmt"

type ArrayStringFlags []string

func (i *ArrayStringFlags) String() string {
	return fmt.Sprintf("%v", *i)
}

func (i *ArrayStringFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}
