package inventory

import "homestead/internal/domain/item"

type Request struct {
	Type  string
	Count int
}

type Response struct {
	Type  item.Type         `json:"type"`
	Items []item.Type       `json:"items"`
	Bag   map[item.Type]int `json:"bag"`
}
