package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"github.com/nmxmxh/navcaps/dom"
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeProtoJSON(w io.Writer, caps dom.Capabilities) error {
	st, err := caps.AsStruct()
	if err != nil {
		return fmt.Errorf("build struct: %w", err)
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode protojson: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
