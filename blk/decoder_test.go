package blk

import "testing"

func TestDecodeSingleRootBlockNoChildrenNoParams(t *testing.T) {
	raw := []byte{
		0x01,                   // tag: PLAIN (non-slim, non-zstd)
		0x01,                   // names_in_name_map
		0x05,                   // name_map_size
		'f', 'o', 'o', 0x00,    // name table blob (name_map_size - 1 bytes)
		0x00,                   // trailing NUL pad
		0x01,                   // num_blocks
		0x00,                   // num_params
		0x00,                   // params_data_size
		0x00, 0x00, 0x00,       // block 0: name_id, param_count, block_count (all 0)
	}

	root, err := Decode(raw, nil, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root.Name != "root" {
		t.Fatalf("root.Name = %q, want %q", root.Name, "root")
	}
	if len(root.Children) != 0 {
		t.Fatalf("root.Children = %v, want none", root.Children)
	}
	if len(root.Params) != 0 {
		t.Fatalf("root.Params = %v, want none", root.Params)
	}
}

func TestDecodeNestedBlocksAndParams(t *testing.T) {
	// One root block with a single child "child" carrying an Int32 param,
	// plus a Str param on the root resolved through params_data.
	paramsData := append([]byte("hi"), 0x00)

	raw := []byte{
		0x01, // tag: PLAIN
		0x02, // names_in_name_map
		0x0c, // name_map_size (11 bytes of names, + 1 trailing NUL pad)
	}
	raw = append(raw, []byte("child\x00name\x00")...) // 11 bytes: "child\0" + "name\0"
	raw = append(raw, 0x00)                           // trailing NUL pad
	raw = append(raw, 0x02)                            // num_blocks
	raw = append(raw, 0x02)                            // num_params
	raw = append(raw, byte(len(paramsData)))           // params_data_size
	raw = append(raw, paramsData...)

	// param 0: name_id=1 ("name"), tag=Str (0x01), payload=offset 0 into paramsData
	raw = append(raw, word32(1, paramTagStr)...)
	raw = append(raw, le32(0)...)
	// param 1: name_id=1 ("name"), tag=Int32 (0x02), payload=42 inline, attached to child
	raw = append(raw, word32(1, paramTagInt32)...)
	raw = append(raw, le32(42)...)

	// block 0 (root): name_id=0 (ignored), param_count=1, block_count=1, first_block_id=1
	raw = append(raw, 0x00, 0x01, 0x01, 0x01)
	// block 1 (child): name_id=1 ("child"), param_count=1, block_count=0
	raw = append(raw, 0x01, 0x01, 0x00)

	root, err := Decode(raw, nil, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(root.Params) != 1 || root.Params[0].Value.Str != "hi" {
		t.Fatalf("root.Params = %+v", root.Params)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "child" {
		t.Fatalf("root.Children = %+v", root.Children)
	}
	child := root.Children[0]
	if len(child.Params) != 1 || child.Params[0].Value.Int32 != 42 {
		t.Fatalf("child.Params = %+v", child.Params)
	}
}

func TestDecodeEmptyPayloadFails(t *testing.T) {
	if _, err := Decode(nil, nil, nil); err == nil {
		t.Fatal("expected an error for an empty payload")
	}
}

func TestDecodeSlimWithoutNameMapFails(t *testing.T) {
	raw := []byte{tagSlim, 0x00}
	if _, err := Decode(raw, nil, nil); err != ErrMissingNameMap {
		t.Fatalf("err = %v, want ErrMissingNameMap", err)
	}
}

func TestDecodeZstdDictWithoutDictFails(t *testing.T) {
	raw := []byte{tagZstdDict, 0x00}
	if _, err := Decode(raw, [][]byte{[]byte("x")}, nil); err != ErrMissingDict {
		t.Fatalf("err = %v, want ErrMissingDict", err)
	}
}

func word32(nameID uint32, tag uint8) []byte {
	v := (nameID & 0x00FFFFFF) | uint32(tag)<<24
	return le32(v)
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
