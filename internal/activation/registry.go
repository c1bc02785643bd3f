package activation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/born-ml/activations/internal/tensor"
)

// Registry names of the built-in activations.
const (
	NameSigmoid   = "sigmoid"
	NameSoftmax   = "softmax"
	NameTanH      = "tanh"
	NameReLU      = "relu"
	NameLeakyReLU = "leaky_relu"
	NameELU       = "elu"
	NameSELU      = "selu"
	NameSoftPlus  = "softplus"
)

// Config selects parameters for activations built by New.
// A nil field means the activation's default configuration.
type Config struct {
	Softmax   *SoftmaxConfig
	LeakyReLU *LeakyReLUConfig
	ELU       *ELUConfig
	SoftPlus  *SoftPlusConfig
}

var aliases = map[string]string{
	"leakyrelu":  NameLeakyReLU,
	"leaky-relu": NameLeakyReLU,
}

// Names returns the registry names of all built-in activations, sorted.
func Names() []string {
	names := []string{
		NameSigmoid, NameSoftmax, NameTanH, NameReLU,
		NameLeakyReLU, NameELU, NameSELU, NameSoftPlus,
	}
	slices.Sort(names)
	return names
}

// New builds the activation registered under name.
// Names are case-insensitive; "leakyrelu" and "leaky-relu" are accepted for "leaky_relu".
//
// Example:
//
//	act, err := activation.New[float32, *cpu.CPUBackend]("leaky_relu", activation.Config{
//	    LeakyReLU: &activation.LeakyReLUConfig{Alpha: 0.2},
//	})
func New[T tensor.Float, B tensor.Backend](name string, cfg Config) (Activation[T, B], error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	switch key {
	case NameSigmoid:
		return NewSigmoid[T, B](), nil
	case NameSoftmax:
		return NewSoftmax[T, B](valueOr(cfg.Softmax, DefaultSoftmaxConfig())), nil
	case NameTanH:
		return NewTanH[T, B](), nil
	case NameReLU:
		return NewReLU[T, B](), nil
	case NameLeakyReLU:
		return NewLeakyReLU[T, B](valueOr(cfg.LeakyReLU, DefaultLeakyReLUConfig())), nil
	case NameELU:
		return NewELU[T, B](valueOr(cfg.ELU, DefaultELUConfig())), nil
	case NameSELU:
		return NewSELU[T, B](), nil
	case NameSoftPlus:
		return NewSoftPlus[T, B](valueOr(cfg.SoftPlus, DefaultSoftPlusConfig())), nil
	default:
		return nil, fmt.Errorf("%q (supported: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownActivation)
	}
}

func valueOr[C any](p *C, def C) C {
	if p == nil {
		return def
	}
	return *p
}
