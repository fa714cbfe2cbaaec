/*
Package core holds the pieces shared by every layer of fbterm: coded
application errors and the contract assertion used for precondition
violations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core
