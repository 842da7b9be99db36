package symjson_test

import (
	"fmt"

	symjson "github.com/minio/symjson-go"
)

type widget struct {
	Name  string
	Count int64
}

func (w *widget) DecodeJSON(d *symjson.Decoder) error {
	if err := d.DescendObject(); err != nil {
		return err
	}
	var hasName bool
	for {
		ok, err := d.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case d.MatchKey("name"):
			if w.Name, err = d.String(); err != nil {
				return err
			}
			hasName = true
		case d.MatchKey("count"):
			if w.Count, err = d.Int(); err != nil {
				return err
			}
		default:
			if err := d.Ignore(); err != nil {
				return err
			}
		}
	}
	if !hasName {
		return d.KeyNotFound("name")
	}
	return nil
}

func ExampleDecode() {
	w, err := symjson.Decode[widget]([]byte(`{"name":"gear","count":3,"color":"red"}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s x%d\n", w.Name, w.Count)
	// Output: gear x3
}
