/*
Package lexmach provides a DFA-based tokenizer for romanized text, built with
lexmachine (https://github.com/timtadh/lexmachine).

It produces the same tokens as the scanner of package lasina and implements
lasina.Sequence, so either may be fed to the renderer. The DFA is compiled
once, on first use, and shared afterwards; scanners are not.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
