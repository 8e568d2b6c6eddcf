// README: Common money value object used across modules.
package types

type Money struct {
    Amount   int64
    Currency string
}
