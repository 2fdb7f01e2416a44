package header_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/log"
)

func ExampleMap() {
	m := header.NewMap(&header.MapOptions{Log: log.Noop})
	_ = m.Add("Accept", "text/html")
	_ = m.Add("accept", "application/json")
	_ = m.Add("X-Long", "first\r\n    second")

	fmt.Println(m.Value("ACCEPT"))
	fmt.Println(m.GetAll("Accept"))
	fmt.Println(m.Value("x-long"))
	fmt.Println(m.Keys())

	_ = m.Set("Accept", "*/*")
	fmt.Println(m.GetAll("accept"))
	// Output:
	// text/html
	// [text/html application/json]
	// first second
	// [Accept X-Long accept]
	// [*/*]
}

func ExampleMap_Add_invalid() {
	m := header.NewMap(&header.MapOptions{Log: log.Noop})

	err := m.Add("Bad Name", "v")
	fmt.Println(errors.Is(err, header.ErrInvalidName), err)

	err = m.Add("X-Ok", "bad\rvalue")
	fmt.Println(errors.Is(err, header.ErrInvalidValue), err)
	fmt.Println(m.Len())
	// Output:
	// true invalid header name: "Bad Name": reserved delimiter or whitespace (' ' at position 3)
	// true invalid header value: "X-Ok": bare CR not followed by LF ('v' at position 4)
	// 0
}

func ExampleMap_MarshalJSON() {
	m := header.MustFromEntries([]header.Entry{
		{Name: "Via", Value: "a"},
		{Name: "via", Value: "b"},
	}, &header.MapOptions{Log: log.Noop})

	data, _ := json.Marshal(m)
	fmt.Println(string(data))
	// Output:
	// [{"name":"Via","value":"a"},{"name":"via","value":"b"}]
}
