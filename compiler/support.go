// This file is part of loxvm - https://github.com/db47h/loxvm
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

package compiler

import (
	"io"
	"strconv"
	"strings"
)

func stringsReader(source string) io.Reader {
	return strings.NewReader(source)
}

func parseFloat(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexeme, 64)
}

// unquoteString strips the surrounding double quotes text/scanner leaves on
// a scanned TokString and resolves its escapes. The stdlib scanner lexes
// Go-style string literals, so strconv.Unquote applies directly.
func unquoteString(lexeme string) (string, error) {
	return strconv.Unquote(lexeme)
}
