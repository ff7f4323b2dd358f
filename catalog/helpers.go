/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package catalog

import (
	"dirpx.dev/echain/catalog/internal/segmenttrie"
	"dirpx.dev/echain/domain"
)

// freezeMessages makes an immutable copy of a per-domain message map.
// Used when finalizing the catalog so later mutations to the builder (or
// caller-owned maps) cannot affect the snapshot.
func freezeMessages(src map[domain.Domain]string) map[domain.Domain]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[domain.Domain]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeTries makes a shallow copy of the per-domain tries. Each trie is
// immutable after build, so only the top-level map needs protecting.
func freezeTries(src map[domain.Domain]*segmenttrie.Trie[string]) map[domain.Domain]*segmenttrie.Trie[string] {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[domain.Domain]*segmenttrie.Trie[string], len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
