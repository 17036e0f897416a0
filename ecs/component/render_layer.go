package component

// RenderLayer orders drawing by Index. Within a layer, entities lower on
// screen draw later so they overlap the ones behind them.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
