package ptp

import (
	"github.com/google/gousb"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// FujifilmVendorID is the USB vendor id shared by every Fujifilm X-series
// body.
const FujifilmVendorID gousb.ID = 0x04CB

// usbTransport drives one PTP bulk IN/OUT endpoint pair via gousb. It
// implements Transport.
type usbTransport struct {
	ctx    *gousb.Context
	dev    *gousb.Device
	cfg    *gousb.Config
	iface  *gousb.Interface
	in     *gousb.InEndpoint
	out    *gousb.OutEndpoint
}

// OpenUSB opens the first device matching vendorID/productID and claims
// its PTP (still image, USB_CLASS_IMAGE) bulk interface. Timeouts are
// left at zero (indefinite), matching the reference client's blocking
// transfer behavior during normal operation.
func OpenUSB(vendorID, productID gousb.ID) (*usbTransport, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(vendorID, productID)
	if err != nil {
		ctx.Close()
		return nil, ptperr.Wrap(ptperr.Transport, "opening usb device", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, ptperr.Newf(ptperr.Transport, "no device matching %s:%s", vendorID, productID)
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, ptperr.Wrap(ptperr.Transport, "enabling auto kernel-driver detach", err)
	}

	cfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, ptperr.Wrap(ptperr.Transport, "selecting usb config", err)
	}

	iface, inEp, outEp, err := claimImageInterface(cfg)
	if err != nil {
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, err
	}

	return &usbTransport{ctx: ctx, dev: dev, cfg: cfg, iface: iface, in: inEp, out: outEp}, nil
}

// claimImageInterface scans cfg for the still-image-class interface and
// claims its bulk IN/OUT endpoint pair. Interface/endpoint descriptor
// walking beyond this minimal PTP-class match is out of scope.
func claimImageInterface(cfg *gousb.Config) (*gousb.Interface, *gousb.InEndpoint, *gousb.OutEndpoint, error) {
	for _, ifaceDesc := range cfg.Desc.Interfaces {
		for _, alt := range ifaceDesc.AltSettings {
			if alt.Class != gousb.ClassImage {
				continue
			}

			iface, err := cfg.Interface(ifaceDesc.Number, alt.Number)
			if err != nil {
				return nil, nil, nil, ptperr.Wrap(ptperr.Transport, "claiming usb interface", err)
			}

			var inAddr, outAddr gousb.EndpointAddress
			for _, ep := range alt.Endpoints {
				if ep.Direction == gousb.EndpointDirectionIn && ep.TransferType == gousb.TransferTypeBulk {
					inAddr = ep.Address
				}
				if ep.Direction == gousb.EndpointDirectionOut && ep.TransferType == gousb.TransferTypeBulk {
					outAddr = ep.Address
				}
			}
			if inAddr == 0 || outAddr == 0 {
				iface.Close()
				continue
			}

			inEp, err := iface.InEndpoint(int(inAddr & 0x0f))
			if err != nil {
				iface.Close()
				return nil, nil, nil, ptperr.Wrap(ptperr.Transport, "opening bulk in endpoint", err)
			}
			outEp, err := iface.OutEndpoint(int(outAddr & 0x0f))
			if err != nil {
				iface.Close()
				return nil, nil, nil, ptperr.Wrap(ptperr.Transport, "opening bulk out endpoint", err)
			}

			return iface, inEp, outEp, nil
		}
	}
	return nil, nil, nil, ptperr.New(ptperr.Transport, "no still-image (PTP) interface found")
}

func (t *usbTransport) WriteBulk(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, ptperr.Wrap(ptperr.Transport, "usb bulk write", err)
	}
	return n, nil
}

func (t *usbTransport) ReadBulk(p []byte) (int, error) {
	n, err := t.in.Read(p)
	if err != nil {
		return n, ptperr.Wrap(ptperr.Transport, "usb bulk read", err)
	}
	return n, nil
}

func (t *usbTransport) Close() error {
	t.iface.Close()
	t.cfg.Close()
	t.dev.Close()
	t.ctx.Close()
	return nil
}

// ListConnectedCameras enumerates every currently-attached device
// reporting the Fujifilm vendor id, returning their product ids. Fuller
// descriptor enumeration (strings, configurations) is out of scope.
func ListConnectedCameras() ([]gousb.ID, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	var found []gousb.ID
	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if desc.Vendor == gousb.ID(FujifilmVendorID) {
			found = append(found, desc.Product)
		}
		return false
	})
	if err != nil {
		return nil, ptperr.Wrap(ptperr.Transport, "enumerating usb devices", err)
	}
	for _, d := range devs {
		d.Close()
	}
	return found, nil
}
