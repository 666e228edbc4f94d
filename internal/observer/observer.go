// Package observer demonstrates the Observer pattern with a stock whose
// price changes are pushed to registered observers.
package observer

import (
	"fmt"
	"io"
)

const separator = "--------------------------------"

// DefaultAlertThreshold is the price above which PriceAlert signals a sale.
const DefaultAlertThreshold = 100.0

// DefaultPrices is the sequence of prices set by the demo.
var DefaultPrices = []float64{80, 120, 95}

// Observer receives price updates.
type Observer interface {
	Update(price float64)
	Name() string
}

// Subject manages observers and notifies them.
type Subject interface {
	Register(o Observer)
	Unregister(o Observer)
	Notify()
}

// Stock is the concrete subject. Observers are notified in registration
// order.
type Stock struct {
	out       io.Writer
	observers []Observer
	price     float64
}

// NewStock creates a stock with price 0 and no observers.
func NewStock(out io.Writer) *Stock {
	return &Stock{out: out}
}

// Register appends o to the observer list.
func (s *Stock) Register(o Observer) {
	s.observers = append(s.observers, o)
	fmt.Fprintf(s.out, "👀 Observer registered: %s\n", o.Name())
}

// Unregister removes every occurrence of o. Unknown observers are ignored.
func (s *Stock) Unregister(o Observer) {
	kept := s.observers[:0]
	for _, existing := range s.observers {
		if existing != o {
			kept = append(kept, existing)
		}
	}
	for i := len(kept); i < len(s.observers); i++ {
		s.observers[i] = nil
	}
	s.observers = kept
	fmt.Fprintf(s.out, "👋 Observer unregistered: %s\n", o.Name())
}

// Price returns the current price.
func (s *Stock) Price() float64 {
	return s.price
}

// Observers returns the number of registered observers.
func (s *Stock) Observers() int {
	return len(s.observers)
}

// SetPrice stores the new price and notifies every observer.
func (s *Stock) SetPrice(price float64) {
	fmt.Fprintf(s.out, "📈 Stock price update: %g → %g\n", s.price, price)
	s.price = price
	s.Notify()
}

// Notify pushes the current price to all observers.
func (s *Stock) Notify() {
	fmt.Fprintln(s.out, "🔔 Notifying all observers...")
	for _, o := range s.observers {
		o.Update(s.price)
	}
	fmt.Fprintln(s.out, separator)
}

// PriceDisplay prints the current price.
type PriceDisplay struct {
	out io.Writer
}

// NewPriceDisplay creates a display observer.
func NewPriceDisplay(out io.Writer) *PriceDisplay { return &PriceDisplay{out: out} }

func (d *PriceDisplay) Name() string { return "PriceDisplay" }

func (d *PriceDisplay) Update(price float64) {
	fmt.Fprintf(d.out, "📺 [PriceDisplay] Current price = %g\n", price)
}

// PriceAlert signals a sale when the price exceeds Threshold.
type PriceAlert struct {
	out       io.Writer
	Threshold float64
}

// NewPriceAlert creates an alert observer for threshold.
func NewPriceAlert(out io.Writer, threshold float64) *PriceAlert {
	return &PriceAlert{out: out, Threshold: threshold}
}

func (a *PriceAlert) Name() string { return "PriceAlert" }

func (a *PriceAlert) Update(price float64) {
	if price > a.Threshold {
		fmt.Fprintf(a.out, "🚨 [PriceAlert] Price %g exceeds %g! Sell signal!\n", price, a.Threshold)
		return
	}
	fmt.Fprintf(a.out, "✅ [PriceAlert] Holding in the stable range (%g)\n", price)
}

// GraphUpdater appends each price as a data point.
type GraphUpdater struct {
	out    io.Writer
	points []float64
}

// NewGraphUpdater creates a graph observer.
func NewGraphUpdater(out io.Writer) *GraphUpdater { return &GraphUpdater{out: out} }

func (g *GraphUpdater) Name() string { return "GraphUpdater" }

func (g *GraphUpdater) Update(price float64) {
	g.points = append(g.points, price)
	fmt.Fprintf(g.out, "📊 [GraphUpdater] Graph refreshed, new data point: %g\n", price)
}

// Points returns the data points received so far.
func (g *GraphUpdater) Points() []float64 {
	out := make([]float64, len(g.points))
	copy(out, g.points)
	return out
}

// Run registers the three observers, applies every price but the last,
// unregisters the graph, then applies the last price.
func Run(out io.Writer, prices []float64, threshold float64) error {
	stock := NewStock(out)
	display := NewPriceDisplay(out)
	alert := NewPriceAlert(out, threshold)
	graph := NewGraphUpdater(out)

	stock.Register(display)
	stock.Register(alert)
	stock.Register(graph)

	if len(prices) == 0 {
		return nil
	}
	for _, p := range prices[:len(prices)-1] {
		stock.SetPrice(p)
	}

	stock.Unregister(graph)
	stock.SetPrice(prices[len(prices)-1])
	return nil
}
