/*
Package option implements optional scalar values.

Filter and generation parameters frequently distinguish between "not given"
and a given value, where the given value may well be 0 (a minimum word
length of 0 is a legal constraint). The types of this package have a zero
value meaning "unset", so they may be embedded into option structs which are
passed by value:

    type Options struct {
        MaxLength option.Int
    }
    o := Options{MaxLength: option.SomeInt(8)}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option
