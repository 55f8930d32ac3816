/*
Package fastblur provides fast, reversible obfuscation of byte sequences using
XOR masking combined with per-byte circular bit rotation.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for scrambling test data, cache entries, or log
payloads where passive observation of plain text is the only concern.

# How it works:

Every byte is XORed with the first key fragment, rotated left by a shift
amount, and XORed with the second key fragment. Reversing the process applies
the same steps backwards with a right rotation. In dynamic mode the shift
amount depends on the byte's position, so identical input bytes at different
positions produce different output bytes; in fixed mode one constant shift is
used for the whole sequence.

Several execution strategies implement the same transform with different
speed/memory trade-offs (a direct loop, an unrolled loop, precomputed rotation
tables, and batched 8-wide processing). The default adaptive strategy picks
one based on input length, and large inputs can optionally be split across
goroutines with WithParallel. All strategies produce byte-identical output.

# Important note:

The same key, key segment, and mode must be used to accurately reverse the
process. There is no integrity checking: deobfuscating with the wrong key
material silently produces wrong bytes rather than an error.
*/
package fastblur
