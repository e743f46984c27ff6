// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bencode

import (
	"bytes"
	"fmt"
)

// DumpStructure generates an indented string representing an arbitrary Value tree for debugging purposes
func DumpStructure(value Value, prefix string) string {
	var ret bytes.Buffer
	switch value.typ {
	case TypeInteger:
		return fmt.Sprintf("%s%d,\n", prefix, value.integer)
	case TypeText:
		return fmt.Sprintf("%s%s,\n", prefix, value.text.String())
	case TypeList:
		ret.WriteString(prefix + "[\n")
		for _, item := range value.list {
			ret.WriteString(DumpStructure(item, prefix+"  "))
		}
		ret.WriteString(prefix + "],\n")
	case TypeDict:
		ret.WriteString(prefix + "{\n")
		for _, key := range value.dict.Keys() {
			entry, _ := value.dict.Get(key)
			switch entry.typ {
			case TypeList, TypeDict:
				ret.WriteString(fmt.Sprintf("%s%s =>\n", prefix+"  ", key.String()))
				ret.WriteString(DumpStructure(entry, prefix+"    "))
			default:
				ret.WriteString(
					fmt.Sprintf(
						"%s%s => %s",
						prefix+"  ",
						key.String(),
						DumpStructure(entry, ""),
					),
				)
			}
		}
		ret.WriteString(prefix + "},\n")
	default:
		return fmt.Sprintf("%s<invalid>,\n", prefix)
	}
	return ret.String()
}
