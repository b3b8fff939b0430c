package remote

type EmptyResponse struct {
}

type DrawRequest struct {
	Image []byte
}
