package value

import (
	"encoding/json"
	"fmt"
)

func ToJson(val Value) ([]byte, error) {
	switch val.(type) {
	case nil_:
		data, err := json.Marshal(nil)
		if err != nil {
			return nil, err
		}
		return data, nil
	case Int, Double:
		data, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return data, nil
	default:
		return nil, fmt.Errorf("json serialization for %T not implemented", val)
	}
}
